package errors

import (
	stdErrors "errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		parent error
	}{
		{"already exists", ErrAlreadyExists, ErrAlreadyExists},
		{"user not found", ErrUserNotFound, ErrNotFound},
		{"product not found", ErrProductNotFound, ErrNotFound},
		{"order not found", ErrOrderNotFound, ErrNotFound},
		{"invalid id", ErrInvalidID, ErrInvalidInput},
		{"invalid quantity", ErrInvalidQuantity, ErrInvalidInput},
		{"invalid amount", ErrInvalidAmount, ErrInvalidInput},
		{"invalid price", ErrInvalidPrice, ErrInvalidInput},
		{"invalid credit limit", ErrInvalidCreditLimit, ErrInvalidInput},
		{"invalid payment mode", ErrInvalidPaymentMode, ErrInvalidInput},
		{"insufficient stock", ErrInsufficientStock, ErrInsufficientStock},
		{"insufficient credit", ErrInsufficientCredit, ErrInsufficientCredit},
		{"blacklisted", ErrUserBlacklisted, ErrUserBlacklisted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.parent) {
				t.Fatalf("expected %v to match %v", tc.err, tc.parent)
			}
		})
	}
}

func TestCategoriesDoNotOverlap(t *testing.T) {
	if stdErrors.Is(ErrUserNotFound, ErrInvalidInput) {
		t.Fatalf("not found must not match invalid input")
	}
	if stdErrors.Is(ErrInvalidAmount, ErrNotFound) {
		t.Fatalf("invalid input must not match not found")
	}
	if stdErrors.Is(ErrUserNotFound, ErrProductNotFound) {
		t.Fatalf("user and product lookups must be distinguishable")
	}
}
