package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")

	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
	ErrOrderNotFound   = fmt.Errorf("order %w", ErrNotFound)

	ErrInvalidID          = fmt.Errorf("%w: empty identifier", ErrInvalidInput)
	ErrInvalidQuantity    = fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	ErrInvalidAmount      = fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	ErrInvalidPrice       = fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	ErrInvalidCreditLimit = fmt.Errorf("%w: credit limit must not be negative", ErrInvalidInput)
	ErrInvalidPaymentMode = fmt.Errorf("%w: unknown payment mode", ErrInvalidInput)

	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInsufficientCredit = errors.New("insufficient credit")
	ErrUserBlacklisted    = errors.New("user is blacklisted")
)
