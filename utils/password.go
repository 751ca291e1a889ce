package utils

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the deterministic SHA-256 digest of the password,
// base64-encoded. There is no per-call salt: every stored legacy credential
// was produced this way and has to keep verifying. New credentials are
// hashed with BcryptPassword; VerifyPassword accepts both formats.
func HashPassword(password string) string {
	if password == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// VerifyPassword reports whether the password matches the stored hash. It
// fails closed on an empty password or empty hash. Hashes in bcrypt format
// are verified with bcrypt, everything else by recomputing the legacy
// digest.
func VerifyPassword(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	if strings.HasPrefix(hash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	return HashPassword(password) == hash
}

// BcryptPassword produces the salted hash used for newly created and
// changed credentials.
func BcryptPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
