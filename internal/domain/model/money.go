package model

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of fractional digits kept for monetary amounts.
const MoneyPlaces = 2

// Money rounds an amount to whole cents.
func Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// WholeCents reports whether d carries no digits beyond MoneyPlaces.
func WholeCents(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MoneyPlaces))
}

// MoneyFromFloat builds a cent-rounded amount from a float literal.
func MoneyFromFloat(f float64) decimal.Decimal {
	return Money(decimal.NewFromFloat(f))
}
