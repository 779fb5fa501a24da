package services

import (
	"crypto/subtle"
	"fmt"

	"chatboard/config"

	"golang.org/x/crypto/bcrypt"
)

// PasswordScheme is the only place stored passwords are produced or compared.
type PasswordScheme interface {
	Prepare(password string) (string, error)
	Matches(stored, supplied string) bool
}

// PlainScheme stores passwords verbatim and compares them for exact equality.
type PlainScheme struct{}

func (PlainScheme) Prepare(password string) (string, error) {
	return password, nil
}

func (PlainScheme) Matches(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// BcryptScheme stores bcrypt hashes.
type BcryptScheme struct {
	Cost int
}

func (s BcryptScheme) Prepare(password string) (string, error) {
	cost := s.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptScheme) Matches(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// NewPasswordScheme picks the scheme named by PASSWORD_SCHEME.
func NewPasswordScheme(cfg *config.Config) (PasswordScheme, error) {
	switch cfg.PasswordScheme {
	case "", config.PasswordPlain:
		return PlainScheme{}, nil
	case config.PasswordBcrypt:
		return BcryptScheme{Cost: cfg.BcryptCost}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", cfg.PasswordScheme)
	}
}
