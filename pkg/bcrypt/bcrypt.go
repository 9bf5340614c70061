package bcrypt

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultCost = 10
)

func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// ComparePassword reports whether password matches hashedPassword.
func ComparePassword(hashedPassword, password string) error {
	if !VerifyHash(hashedPassword) {
		return fmt.Errorf("stored value is not a bcrypt hash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return fmt.Errorf("password comparison failed: %w", err)
	}
	return nil
}

func VerifyHash(hash string) bool {
	return len(hash) == 60 && hash[0:2] == "$2"
}
