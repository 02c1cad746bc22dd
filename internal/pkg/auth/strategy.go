package auth

import "time"

// Strategy issues and verifies per-user access tokens.
type Strategy interface {
	IssueToken(userID string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

// Options tunes token issuing.
type Options struct {
	TTL time.Duration
	// Now overrides the time source; nil means time.Now.
	Now func() time.Time
}
