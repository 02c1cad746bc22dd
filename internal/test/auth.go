package test

import (
	"errors"

	pkgAuth "github.com/polkiloo/bnplmart/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied secret.
func (h HasherStub) Hash(secret string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(secret)
	}
	return "hash:" + secret, nil
}

// Compare validates secret against stored hash.
func (h HasherStub) Compare(hash string, secret string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, secret)
	}
	if hash != "hash:"+secret {
		return errors.New("mismatch")
	}
	return nil
}

// KeyVerifierStub accepts a single configured key.
type KeyVerifierStub struct {
	Key      string
	VerifyFn func(string) error
}

// Verify either delegates to override or compares with Key.
func (s KeyVerifierStub) Verify(presented string) error {
	if s.VerifyFn != nil {
		return s.VerifyFn(presented)
	}
	if presented == "" || presented != s.Key {
		return pkgAuth.ErrInvalidKey
	}
	return nil
}

// TokenParserStub maps tokens to user ids through Tokens or ParseFn.
type TokenParserStub struct {
	Tokens  map[string]string
	ParseFn func(string) (string, error)
}

// ParseToken resolves known tokens and rejects everything else.
func (s TokenParserStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if id, ok := s.Tokens[token]; ok {
		return id, nil
	}
	return "", pkgAuth.ErrInvalidToken
}

var _ pkgAuth.SecretHasher = HasherStub{}
