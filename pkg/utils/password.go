package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a password using bcrypt with a per-password random salt.
// The plaintext is never stored or logged anywhere.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a bcrypt digest. A malformed
// digest verifies false rather than surfacing an error to the caller.
func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
