package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest asks to buy quantity units of a product.
type PlaceOrderRequest struct {
	ProductID   string `json:"product_id" binding:"required"`
	Quantity    int    `json:"quantity"`
	PaymentMode string `json:"payment_mode" binding:"required"`
}

// OrderResponse describes an order snapshot.
type OrderResponse struct {
	ID              string          `json:"order_id"`
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name,omitempty"`
	Quantity        int             `json:"quantity"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaymentMode     string          `json:"payment_mode"`
	Status          string          `json:"status"`
	OrderDate       time.Time       `json:"order_date"`
	DueDate         *time.Time      `json:"due_date,omitempty"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	IsDefaulted     bool            `json:"is_defaulted"`
}
