package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/bnplmart/internal/domain/model"
)

// CatalogFacade exposes product stocking and inventory lookups.
type CatalogFacade interface {
	Stock(ctx context.Context, product model.Product, quantity int) (model.InventoryItem, error)
	InventoryStatus(ctx context.Context, productID string) (model.InventoryItem, error)
	Inventory(ctx context.Context) ([]model.InventoryItem, error)
}

// UserFacade covers user registration, token issuing and reporting.
type UserFacade interface {
	RegisterUser(ctx context.Context, id, name string, creditLimit decimal.Decimal) (model.User, error)
	IssueToken(ctx context.Context, userID string) (string, error)
	UserStatus(ctx context.Context, userID string) (model.UserStatus, error)
	OrderHistory(ctx context.Context, userID string) ([]model.OrderHistoryEntry, error)
	Events(ctx context.Context, userID string) ([]model.LedgerEvent, error)
}

// OrderFacade places orders.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID, productID string, quantity int, mode model.PaymentMode) (model.Order, error)
}

// PaymentFacade applies payments and settles overdue orders.
type PaymentFacade interface {
	ClearDues(ctx context.Context, userID string, amount decimal.Decimal) (model.PaymentResult, error)
	SettleDefaults(ctx context.Context, userID string) (int, error)
}

// TokenFacade resolves access tokens to user ids.
type TokenFacade interface {
	ParseToken(token string) (string, error)
}

// HealthFacade reports backend availability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// BNPLFacade aggregates the full set of operations used across handlers.
type BNPLFacade interface {
	CatalogFacade
	UserFacade
	OrderFacade
	PaymentFacade
	TokenFacade
	HealthFacade
}
