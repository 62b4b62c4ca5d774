package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt-hashes password at the default cost.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ErrPasswordTooLong is returned by HashPassword for inputs over 72 bytes.
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong
