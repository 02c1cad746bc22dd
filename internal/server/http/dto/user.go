package dto

import "github.com/shopspring/decimal"

// RegisterUserRequest opens a credit line for a new user.
type RegisterUserRequest struct {
	ID          string          `json:"user_id" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

// UserResponse describes a freshly registered user and carries the access
// token for the per-user endpoints.
type UserResponse struct {
	ID              string          `json:"user_id"`
	Name            string          `json:"name"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
	Token           string          `json:"token"`
}

// TokenResponse is a reissued access token.
type TokenResponse struct {
	ID    string `json:"user_id"`
	Token string `json:"token"`
}

// UserStatusResponse summarizes credit usage and order counts.
type UserStatusResponse struct {
	ID               string          `json:"user_id"`
	Name             string          `json:"name"`
	CreditLimit      decimal.Decimal `json:"credit_limit"`
	UsedCredit       decimal.Decimal `json:"used_credit"`
	AvailableCredit  decimal.Decimal `json:"available_credit"`
	IsBlacklisted    bool            `json:"is_blacklisted"`
	DefaultCount     int             `json:"default_count"`
	TotalPendingDues decimal.Decimal `json:"total_pending_dues"`
	TotalOrders      int             `json:"total_orders"`
	OrderCounts      map[string]int  `json:"order_counts"`
}

// EventResponse is one ledger journal entry.
type EventResponse struct {
	ID         int64           `json:"id"`
	Kind       string          `json:"kind"`
	OrderID    string          `json:"order_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Detail     string          `json:"detail,omitempty"`
	RecordedAt string          `json:"recorded_at"`
}
