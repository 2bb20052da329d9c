package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher encrypts and decrypts single string values into self-describing
// envelopes. It holds no key state: the same key bytes passed to Encrypt must
// be passed to the paired Decrypt.
//
// Envelope layout (before base64):
//
//	IV (16 bytes) || ciphertext (PKCS#7 padded to the block size)
type Cipher interface {
	// Encrypt returns the base64 envelope of plaintext. An empty plaintext
	// yields an empty string and no error.
	Encrypt(plaintext string, key []byte) (string, error)

	// Decrypt recovers the plaintext from envelope. An empty envelope yields
	// an empty string and no error. Every other failure wraps [ErrCryptoFailure].
	Decrypt(envelope string, key []byte) (string, error)
}
