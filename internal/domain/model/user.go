package model

import "github.com/shopspring/decimal"

// User is a customer holding a BNPL credit line.
type User struct {
	ID            string
	Name          string
	CreditLimit   decimal.Decimal
	UsedCredit    decimal.Decimal
	IsBlacklisted bool
	DefaultCount  int
}

// AvailableCredit returns the unused part of the credit line.
func (u User) AvailableCredit() decimal.Decimal {
	return u.CreditLimit.Sub(u.UsedCredit)
}
