package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidKey is returned when a presented operator key does not match.
var ErrInvalidKey = errors.New("invalid operator key")

// SecretHasher hashes secrets and checks candidates against stored hashes.
type SecretHasher interface {
	Hash(secret string) (string, error)
	Compare(hash string, secret string) error
}

// BcryptHasher hashes secrets with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates BcryptHasher; zero cost selects bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(secret string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func (h *BcryptHasher) Compare(hash string, secret string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
}

// KeyVerifier checks operator keys against a hash computed once at startup,
// so the plain key is not kept in memory after construction.
type KeyVerifier struct {
	hasher SecretHasher
	hash   string
}

// NewKeyVerifier hashes key with hasher.
func NewKeyVerifier(hasher SecretHasher, key string) (*KeyVerifier, error) {
	if key == "" {
		return nil, errors.New("operator key must not be empty")
	}
	hash, err := hasher.Hash(key)
	if err != nil {
		return nil, fmt.Errorf("hash operator key: %w", err)
	}
	return &KeyVerifier{hasher: hasher, hash: hash}, nil
}

// Verify returns ErrInvalidKey unless presented matches the configured key.
func (v *KeyVerifier) Verify(presented string) error {
	if presented == "" {
		return ErrInvalidKey
	}
	if err := v.hasher.Compare(v.hash, presented); err != nil {
		return ErrInvalidKey
	}
	return nil
}
