package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode tells whether an order is paid upfront or deferred against credit.
type PaymentMode string

const (
	PaymentModePrepaid PaymentMode = "PREPAID"
	PaymentModeBNPL    PaymentMode = "BNPL"
)

// Valid reports whether m is a known payment mode.
func (m PaymentMode) Valid() bool {
	return m == PaymentModePrepaid || m == PaymentModeBNPL
}

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusDefaulted OrderStatus = "DEFAULTED"
)

// Order is a purchase placed by a user.
type Order struct {
	ID              string
	UserID          string
	ProductID       string
	Quantity        int
	TotalAmount     decimal.Decimal
	PaymentMode     PaymentMode
	OrderDate       time.Time
	DueDate         *time.Time
	Status          OrderStatus
	AmountPaid      decimal.Decimal
	RemainingAmount decimal.Decimal
}

// IsDefaultedAt reports whether a BNPL order with an unpaid balance is past its due date at now.
func (o *Order) IsDefaultedAt(now time.Time) bool {
	if o.PaymentMode != PaymentModeBNPL || o.DueDate == nil {
		return false
	}
	return o.RemainingAmount.IsPositive() && now.After(*o.DueDate)
}

// Outstanding reports whether a BNPL order still carries a balance.
func (o *Order) Outstanding() bool {
	return o.PaymentMode == PaymentModeBNPL && o.RemainingAmount.IsPositive()
}
