// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// aesCBC is the private implementation of [Cipher] using AES in CBC mode
// with PKCS#7 padding.
type aesCBC struct {
	// random is the IV source. Always crypto/rand outside of tests.
	random io.Reader
}

// NewAESCBC constructs the AES-CBC [Cipher]. The AES variant (128, 192 or
// 256) is picked by the length of the key passed on each call.
func NewAESCBC() Cipher {
	return &aesCBC{random: rand.Reader}
}

var defaultCipher = NewAESCBC()

// EncryptString encrypts plaintext with the default AES-CBC [Cipher].
func EncryptString(plaintext string, key []byte) (string, error) {
	return defaultCipher.Encrypt(plaintext, key)
}

// DecryptString decrypts envelope with the default AES-CBC [Cipher].
func DecryptString(envelope string, key []byte) (string, error) {
	return defaultCipher.Decrypt(envelope, key)
}

// Encrypt implements [Cipher]. A fresh random IV is drawn for every call, so
// encrypting the same plaintext twice never yields the same envelope.
func (c *aesCBC) Encrypt(plaintext string, key []byte) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	block, err := newBlock(key)
	if err != nil {
		return "", err
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)

	blob := make([]byte, aes.BlockSize+len(padded))
	iv := blob[:aes.BlockSize]
	if _, err = io.ReadFull(c.random, iv); err != nil {
		return "", fmt.Errorf("%w: generate iv: %w", ErrCryptoFailure, err)
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(blob[aes.BlockSize:], padded)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [Cipher].
func (c *aesCBC) Decrypt(envelope string, key []byte) (string, error) {
	if envelope == "" {
		return "", nil
	}

	block, err := newBlock(key)
	if err != nil {
		return "", err
	}

	blob, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return "", fmt.Errorf("%w: %w: %w", ErrCryptoFailure, ErrMalformedEnvelope, err)
	}

	// IV plus at least one block: PKCS#7 always adds one byte or more.
	if len(blob) < 2*aes.BlockSize || len(blob)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: %w: %d bytes", ErrCryptoFailure, ErrMalformedEnvelope, len(blob))
	}

	iv, ciphertext := blob[:aes.BlockSize], blob[aes.BlockSize:]

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	plain, err = pkcs7Unpad(plain, aes.BlockSize)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCryptoFailure, err)
	}

	return string(plain), nil
}

func newBlock(key []byte) (cipher.Block, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %w: %d bytes", ErrCryptoFailure, ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCryptoFailure, err)
	}

	return block, nil
}
