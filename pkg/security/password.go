// Package security contains everything related to the security of user data
package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

type PasswordHash struct {
	Cost int
}

func New() *PasswordHash {
	return &PasswordHash{
		Cost: 10,
	}
}

// Generate hashes a plaintext password. The plaintext is never stored
func (p *PasswordHash) Generate(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.Cost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// Verify compares a plaintext password against a stored hash in
// constant time. A mismatch is not an error
func (p *PasswordHash) Verify(password, encoded string) (ok bool, err error) {
	err = bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
