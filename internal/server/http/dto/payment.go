package dto

import "github.com/shopspring/decimal"

// PaymentRequest carries an amount to apply against outstanding dues.
type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// AllocationResponse shows how much of a payment reached one order.
type AllocationResponse struct {
	OrderID   string          `json:"order_id"`
	Applied   decimal.Decimal `json:"applied"`
	Remaining decimal.Decimal `json:"remaining"`
	Status    string          `json:"status"`
}

// PaymentResponse reports applied and unused parts of a payment.
type PaymentResponse struct {
	Applied     decimal.Decimal      `json:"applied"`
	Leftover    decimal.Decimal      `json:"leftover"`
	Allocations []AllocationResponse `json:"allocations"`
}

// SettleDefaultsResponse reports how many orders were newly defaulted.
type SettleDefaultsResponse struct {
	NewlyDefaulted int `json:"newly_defaulted"`
}

// ErrorResponse carries a human readable failure reason.
type ErrorResponse struct {
	Error string `json:"error"`
}
