package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/argon2"
)

// Algo is stored next to every hash so parameters can change later.
const Algo = "argon2id"

// Argon2id parameters
const (
	Time    = 1
	Memory  = 64 * 1024
	Threads = 4
	KeyLen  = 32
	SaltLen = 16
)

// HashPassword hashes a password with a new random salt using Argon2id
func HashPassword(password string) (hash, salt string, err error) {
	saltBytes := make([]byte, SaltLen)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", "", err
	}
	hash = encode(argon2.IDKey([]byte(password), saltBytes, Time, Memory, Threads, KeyLen))
	return hash, encode(saltBytes), nil
}

// VerifyPassword checks a password against a stored hash and salt in
// constant time.
func VerifyPassword(password, hash, salt string) bool {
	saltBytes, err := base64.RawStdEncoding.DecodeString(salt)
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(hash)
	if err != nil {
		return false
	}
	got := argon2.IDKey([]byte(password), saltBytes, Time, Memory, Threads, KeyLen)
	return subtle.ConstantTimeCompare(got, want) == 1
}

func encode(b []byte) string {
	return base64.RawStdEncoding.EncodeToString(b)
}
