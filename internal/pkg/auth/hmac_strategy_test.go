package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/polkiloo/bnplmart/internal/pkg/clock"
)

var tokenEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func signedToken(s *HMACStrategy, payload string) string {
	return base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", payload, s.sign(payload))))
}

func encodedUser(id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}

func TestNewHMACStrategyDefaults(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if string(strategy.secret) != "secret" {
		t.Fatalf("unexpected secret: %q", string(strategy.secret))
	}
	if strategy.ttl != DefaultTokenTTL {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
	if strategy.now == nil {
		t.Fatal("expected default time source")
	}

	custom := NewHMACStrategy("secret", Options{TTL: 2 * time.Hour})
	if custom.ttl != 2*time.Hour {
		t.Fatalf("unexpected ttl: %s", custom.ttl)
	}
}

func TestHMACStrategyIssueAndParse(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})

	for _, id := range []string{"U001", "tenant:42", "Ünïcode-user"} {
		token, err := strategy.IssueToken(id)
		if err != nil {
			t.Fatalf("issue token for %q: %v", id, err)
		}
		got, err := strategy.ParseToken(token)
		if err != nil {
			t.Fatalf("parse token for %q: %v", id, err)
		}
		if got != id {
			t.Fatalf("expected %q, got %q", id, got)
		}
	}

	if _, err := strategy.IssueToken(""); err == nil {
		t.Fatal("expected error for empty user id")
	}
}

func TestHMACStrategyRejectsForeignSecret(t *testing.T) {
	token, err := NewHMACStrategy("secret", Options{}).IssueToken("U001")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := NewHMACStrategy("other", Options{}).ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategyRejectsTampering(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})
	token, err := strategy.IssueToken("U001")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("decode token: %v", err)
	}
	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		t.Fatalf("unexpected parts count: %d", len(parts))
	}

	swapped := append([]string{encodedUser("U002")}, parts[1:]...)
	tampered := map[string]string{
		"signature": base64.StdEncoding.EncodeToString([]byte(parts[0] + ":" + parts[1] + ":tampered")),
		"user":      base64.StdEncoding.EncodeToString([]byte(strings.Join(swapped, ":"))),
	}
	for name, tok := range tampered {
		t.Run(name, func(t *testing.T) {
			if _, err := strategy.ParseToken(tok); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestHMACStrategyRejectsMalformed(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	future := tokenEpoch.Add(time.Hour).Unix()
	strategy.now = func() time.Time { return tokenEpoch }

	tests := map[string]string{
		"not base64":      "not-base64!",
		"two parts":       base64.StdEncoding.EncodeToString([]byte("only:two")),
		"bad user":        signedToken(strategy, fmt.Sprintf("***:%d", future)),
		"empty user":      signedToken(strategy, fmt.Sprintf(":%d", future)),
		"bad expiry":      signedToken(strategy, encodedUser("U001")+":not-a-number"),
		"already expired": signedToken(strategy, fmt.Sprintf("%s:%d", encodedUser("U001"), tokenEpoch.Add(-time.Minute).Unix())),
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestHMACStrategyExpiresAfterTTL(t *testing.T) {
	now := clock.NewManual(tokenEpoch)
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour, Now: now.Now})

	token, err := strategy.IssueToken("U001")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	now.Advance(59 * time.Minute)
	if _, err := strategy.ParseToken(token); err != nil {
		t.Fatalf("expected token to be valid before ttl, got %v", err)
	}

	now.Advance(2 * time.Minute)
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token, got %v", err)
	}
}

func TestHMACStrategyName(t *testing.T) {
	if name := NewHMACStrategy("secret", Options{}).Name(); name != "hmac" {
		t.Fatalf("unexpected name: %s", name)
	}
}
