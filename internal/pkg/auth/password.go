package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost keeps hash verification around the ~100ms mark on current
// hardware. Matches the cost the original deployment used.
const BcryptCost = 12

// HashPassword returns the bcrypt hash of a password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword compares a plaintext password against a stored hash
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
