package usecase

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/bnplmart/internal/domain/errors"
	"github.com/polkiloo/bnplmart/internal/domain/model"
)

// ValidateID rejects empty identifiers and identifiers containing whitespace or control characters.
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return domainErrors.ErrInvalidID
	}
	for _, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return domainErrors.ErrInvalidID
		}
	}
	return nil
}

// ValidateQuantity requires a strictly positive unit count.
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return domainErrors.ErrInvalidQuantity
	}
	return nil
}

// NormalizeAmount requires a positive payment expressed in whole cents.
// Sub-cent amounts are rejected rather than rounded so a payment never
// applies more than the caller sent.
func NormalizeAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, domainErrors.ErrInvalidAmount
	}
	if err := requireWholeCents(amount, domainErrors.ErrInvalidAmount); err != nil {
		return decimal.Zero, err
	}
	return model.Money(amount), nil
}

func requireWholeCents(amount decimal.Decimal, sentinel error) error {
	if !model.WholeCents(amount) {
		return fmt.Errorf("%w: %s has more than %d decimal places", sentinel, amount.String(), model.MoneyPlaces)
	}
	return nil
}

// ValidatePaymentMode accepts PREPAID and BNPL only.
func ValidatePaymentMode(mode model.PaymentMode) error {
	if !mode.Valid() {
		return domainErrors.ErrInvalidPaymentMode
	}
	return nil
}
