package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPKCS7(t *testing.T) {
	tests := []struct {
		name   string
		in     []byte
		padLen int
	}{
		{name: "empty", in: []byte{}, padLen: 16},
		{name: "one byte", in: []byte("a"), padLen: 15},
		{name: "fifteen bytes", in: []byte("abcdefghijklmno"), padLen: 1},
		{name: "aligned", in: []byte("abcdefghijklmnop"), padLen: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			padded := pkcs7Pad(append([]byte(nil), tt.in...), 16)
			require.Len(t, padded, len(tt.in)+tt.padLen)
			assert.Equal(t, byte(tt.padLen), padded[len(padded)-1])

			out, err := pkcs7Unpad(padded, 16)
			require.NoError(t, err)
			assert.Equal(t, tt.in, out)
		})
	}
}

func TestPKCS7Unpad_Invalid(t *testing.T) {
	block := func(last ...byte) []byte {
		b := make([]byte, 16)
		copy(b[16-len(last):], last)
		return b
	}

	tests := []struct {
		name string
		in   []byte
	}{
		{name: "empty", in: nil},
		{name: "not aligned", in: make([]byte, 15)},
		{name: "zero pad byte", in: block(0)},
		{name: "pad longer than block", in: block(17)},
		{name: "inconsistent pad bytes", in: block(3, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pkcs7Unpad(tt.in, 16)
			assert.ErrorIs(t, err, ErrInvalidPadding)
		})
	}
}
