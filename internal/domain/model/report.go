package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserStatus is a point-in-time summary of a user's credit line and orders.
type UserStatus struct {
	UserID           string
	Name             string
	CreditLimit      decimal.Decimal
	UsedCredit       decimal.Decimal
	AvailableCredit  decimal.Decimal
	IsBlacklisted    bool
	DefaultCount     int
	TotalPendingDues decimal.Decimal
	TotalOrders      int
	OrderCounts      map[OrderStatus]int
}

// OrderHistoryEntry is an order snapshot enriched for reporting.
type OrderHistoryEntry struct {
	Order
	ProductName string
	IsDefaulted bool
}

// Allocation records how much of a payment went to one order.
type Allocation struct {
	OrderID   string
	Applied   decimal.Decimal
	Remaining decimal.Decimal
	Status    OrderStatus
}

// PaymentResult describes the outcome of clearing dues.
type PaymentResult struct {
	Applied     decimal.Decimal
	Leftover    decimal.Decimal
	Allocations []Allocation
}

// EventKind names a ledger journal entry type.
type EventKind string

const (
	EventUserRegistered  EventKind = "USER_REGISTERED"
	EventProductStocked  EventKind = "PRODUCT_STOCKED"
	EventOrderPlaced     EventKind = "ORDER_PLACED"
	EventPaymentApplied  EventKind = "PAYMENT_APPLIED"
	EventOrderDefaulted  EventKind = "ORDER_DEFAULTED"
	EventUserBlacklisted EventKind = "USER_BLACKLISTED"
)

// LedgerEvent is an append-only audit record of a state change.
type LedgerEvent struct {
	ID         int64
	UserID     string
	Kind       EventKind
	OrderID    string
	Amount     decimal.Decimal
	Detail     string
	RecordedAt time.Time
}
