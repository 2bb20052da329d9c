// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// ErrCryptoFailure is the umbrella error for every failure inside the cipher.
// The more specific errors below are always returned wrapped together with it,
// so callers can match either with [errors.Is].
var ErrCryptoFailure = errors.New("crypto failure")

var (
	// ErrInvalidKeySize is returned when the key is not 16, 24 or 32 bytes long.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrMalformedEnvelope is returned when the envelope is not valid base64,
	// is shorter than an IV plus one block, or its ciphertext is not a
	// multiple of the block size.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrInvalidPadding is returned when PKCS#7 padding validation fails after
	// decryption. With CBC this is the usual symptom of a wrong key.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrInvalidKeyEncoding is returned by [DecodeKey] when the key text is
	// not standard base64.
	ErrInvalidKeyEncoding = errors.New("key is not valid base64")
)
