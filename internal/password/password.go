// Package password derives and checks salted PBKDF2 password hashes.
// Stored form is "saltHex:hashHex" where the salt is 16 random bytes
// hex-encoded and the hash is PBKDF2-HMAC-SHA512, 1000 iterations,
// 64-byte key, computed over the hex salt string itself.
package password

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 16
	iterations = 1000
	keyLen     = 64
)

func Hash(password string) string {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		panic(err) // crypto/rand failure means the host is broken
	}
	saltHex := hex.EncodeToString(salt)
	key := pbkdf2.Key([]byte(password), []byte(saltHex), iterations, keyLen, sha512.New)
	return saltHex + ":" + hex.EncodeToString(key)
}

// Verify reports whether supplied matches the stored "saltHex:hashHex"
// value. A malformed stored value is a mismatch, not an error.
func Verify(stored, supplied string) bool {
	saltHex, wantHex, ok := strings.Cut(stored, ":")
	if !ok {
		return false
	}
	want, err := hex.DecodeString(wantHex)
	if err != nil {
		return false
	}
	got := pbkdf2.Key([]byte(supplied), []byte(saltHex), iterations, keyLen, sha512.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}
