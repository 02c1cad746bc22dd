package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/bnplmart/internal/domain/errors"
	"github.com/polkiloo/bnplmart/internal/domain/model"
)

// BlacklistThreshold is the number of defaulted orders after which a user loses BNPL access.
const BlacklistThreshold = 3

// CreditLedger tracks per-user credit lines, defaults and blacklist flags.
type CreditLedger struct {
	users map[string]*model.User
	ids   []string
}

// NewCreditLedger constructs an empty CreditLedger.
func NewCreditLedger() *CreditLedger {
	return &CreditLedger{users: make(map[string]*model.User)}
}

// Register opens a credit line for a new user.
func (l *CreditLedger) Register(id, name string, creditLimit decimal.Decimal) (model.User, error) {
	if err := ValidateID(id); err != nil {
		return model.User{}, fmt.Errorf("user: %w", err)
	}
	if creditLimit.IsNegative() {
		return model.User{}, domainErrors.ErrInvalidCreditLimit
	}
	if err := requireWholeCents(creditLimit, domainErrors.ErrInvalidCreditLimit); err != nil {
		return model.User{}, err
	}
	if _, exists := l.users[id]; exists {
		return model.User{}, fmt.Errorf("user %s: %w", id, domainErrors.ErrAlreadyExists)
	}

	user := &model.User{
		ID:          id,
		Name:        name,
		CreditLimit: model.Money(creditLimit),
		UsedCredit:  decimal.Zero,
	}
	l.users[id] = user
	l.ids = append(l.ids, id)
	return *user, nil
}

// Get returns a snapshot of the user.
func (l *CreditLedger) Get(userID string) (model.User, error) {
	user, ok := l.users[userID]
	if !ok {
		return model.User{}, domainErrors.ErrUserNotFound
	}
	return *user, nil
}

// AvailableCredit returns credit_limit minus used_credit.
func (l *CreditLedger) AvailableCredit(userID string) (decimal.Decimal, error) {
	user, ok := l.users[userID]
	if !ok {
		return decimal.Zero, domainErrors.ErrUserNotFound
	}
	return user.AvailableCredit(), nil
}

// Charge adds amount to used credit. Callers check eligibility first.
func (l *CreditLedger) Charge(userID string, amount decimal.Decimal) error {
	user, ok := l.users[userID]
	if !ok {
		return domainErrors.ErrUserNotFound
	}
	user.UsedCredit = user.UsedCredit.Add(amount)
	return nil
}

// Release returns amount to the credit line, never going below zero usage.
func (l *CreditLedger) Release(userID string, amount decimal.Decimal) error {
	user, ok := l.users[userID]
	if !ok {
		return domainErrors.ErrUserNotFound
	}
	user.UsedCredit = user.UsedCredit.Sub(amount)
	if user.UsedCredit.IsNegative() {
		user.UsedCredit = decimal.Zero
	}
	return nil
}

// RecordDefaults adds count defaults to the user and reports whether this call blacklisted them.
func (l *CreditLedger) RecordDefaults(userID string, count int) (bool, error) {
	user, ok := l.users[userID]
	if !ok {
		return false, domainErrors.ErrUserNotFound
	}
	if count <= 0 {
		return false, nil
	}

	user.DefaultCount += count
	if user.DefaultCount >= BlacklistThreshold && !user.IsBlacklisted {
		user.IsBlacklisted = true
		return true, nil
	}
	return false, nil
}

// CheckBNPL explains why the user may not defer amount, or returns nil.
func (l *CreditLedger) CheckBNPL(userID string, amount decimal.Decimal) error {
	user, ok := l.users[userID]
	if !ok {
		return domainErrors.ErrUserNotFound
	}
	if user.IsBlacklisted {
		return domainErrors.ErrUserBlacklisted
	}
	if available := user.AvailableCredit(); available.LessThan(amount) {
		return fmt.Errorf("%w: %s requested, %s available", domainErrors.ErrInsufficientCredit, amount.StringFixed(model.MoneyPlaces), available.StringFixed(model.MoneyPlaces))
	}
	return nil
}

// IsEligibleForBNPL reports whether the user is not blacklisted and has enough available credit.
func (l *CreditLedger) IsEligibleForBNPL(userID string, amount decimal.Decimal) bool {
	return l.CheckBNPL(userID, amount) == nil
}

// UserIDs lists users in registration order.
func (l *CreditLedger) UserIDs() []string {
	out := make([]string, len(l.ids))
	copy(out, l.ids)
	return out
}
