package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// DefaultKeySize is the recommended key length in bytes (AES-256).
const DefaultKeySize = 32

// DecodeKey turns the base64 text form of a key into raw key bytes.
// Surrounding whitespace is ignored. The key length is not checked here;
// [Cipher] rejects unsupported sizes on use.
func DecodeKey(text string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyEncoding, err)
	}

	return key, nil
}

// EncodeKey returns the base64 text form of key.
func EncodeKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// GenerateKey reads size random bytes from the OS CSPRNG. size must be a
// valid AES key length.
func GenerateKey(size int) ([]byte, error) {
	switch size {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidKeySize, size)
	}

	key := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}

	return key, nil
}
