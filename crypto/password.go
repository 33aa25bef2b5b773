package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/argon2"
)

// Params defines parameters for Argon2id key derivation.
type Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams sets secure defaults for Argon2id.
var DefaultParams = Params{
	Memory:      64 * 1024, // 64 MB
	Iterations:  3,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32, // 256-bit key
}

// HashPassword derives an Argon2id key from the password under a fresh
// random salt. The caller stores both the salt and the key.
func HashPassword(password string, params Params) (salt, key []byte, err error) {
	if password == "" {
		return nil, nil, errors.New("password cannot be empty")
	}

	salt = make([]byte, params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, err
	}

	key = argon2.IDKey(
		[]byte(password),
		salt,
		params.Iterations,
		params.Memory,
		params.Parallelism,
		params.KeyLength,
	)
	return salt, key, nil
}

// VerifyPassword re-derives the key from the password and salt and
// compares it to the stored key in constant time.
func VerifyPassword(password string, salt, storedKey []byte, params Params) (bool, error) {
	if len(password) == 0 || len(salt) == 0 || len(storedKey) == 0 {
		return false, errors.New("invalid input parameters")
	}

	key := argon2.IDKey(
		[]byte(password),
		salt,
		params.Iterations,
		params.Memory,
		params.Parallelism,
		params.KeyLength,
	)
	return subtle.ConstantTimeCompare(key, storedKey) == 1, nil
}

// Wipe zeroes sensitive data in memory.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
