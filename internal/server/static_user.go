package server

import (
	"context"
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// StaticUserRepo accepts a single operator whose bcrypt hash comes from
// configuration. Used when no database is configured.
type StaticUserRepo struct {
	username     string
	passwordHash []byte
}

func NewStaticUserRepo(username, passwordHash string) *StaticUserRepo {
	return &StaticUserRepo{username: username, passwordHash: []byte(passwordHash)}
}

func (r *StaticUserRepo) ValidateUser(_ context.Context, username, password string) (bool, error) {
	if len(r.passwordHash) == 0 {
		return false, nil
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(r.username)) != 1 {
		return false, nil
	}
	if err := bcrypt.CompareHashAndPassword(r.passwordHash, []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
