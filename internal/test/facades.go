package test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/bnplmart/internal/domain/model"
)

// CatalogFacadeStub provides controllable behaviour for product endpoints.
type CatalogFacadeStub struct {
	StockFn     func(context.Context, model.Product, int) (model.InventoryItem, error)
	StatusFn    func(context.Context, string) (model.InventoryItem, error)
	InventoryFn func(context.Context) ([]model.InventoryItem, error)
}

// Stock delegates to provided function or echoes the request.
func (s CatalogFacadeStub) Stock(ctx context.Context, product model.Product, quantity int) (model.InventoryItem, error) {
	if s.StockFn != nil {
		return s.StockFn(ctx, product, quantity)
	}
	return model.InventoryItem{Product: product, Quantity: quantity}, nil
}

// InventoryStatus returns a single default product.
func (s CatalogFacadeStub) InventoryStatus(ctx context.Context, productID string) (model.InventoryItem, error) {
	if s.StatusFn != nil {
		return s.StatusFn(ctx, productID)
	}
	return model.InventoryItem{Product: model.Product{ID: productID, Name: "Product", Price: decimal.NewFromInt(10)}, Quantity: 1}, nil
}

// Inventory returns predefined catalog contents.
func (s CatalogFacadeStub) Inventory(ctx context.Context) ([]model.InventoryItem, error) {
	if s.InventoryFn != nil {
		return s.InventoryFn(ctx)
	}
	return []model.InventoryItem{{Product: model.Product{ID: "P001", Name: "Product", Price: decimal.NewFromInt(10)}, Quantity: 1}}, nil
}

// UserFacadeStub simulates user registration and reporting.
type UserFacadeStub struct {
	RegisterFn func(context.Context, string, string, decimal.Decimal) (model.User, error)
	IssueFn    func(context.Context, string) (string, error)
	StatusFn   func(context.Context, string) (model.UserStatus, error)
	HistoryFn  func(context.Context, string) ([]model.OrderHistoryEntry, error)
	EventsFn   func(context.Context, string) ([]model.LedgerEvent, error)
}

// RegisterUser returns a user built from the arguments.
func (s UserFacadeStub) RegisterUser(ctx context.Context, id, name string, creditLimit decimal.Decimal) (model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, id, name, creditLimit)
	}
	return model.User{ID: id, Name: name, CreditLimit: creditLimit}, nil
}

// IssueToken returns "token-<user>" unless IssueFn overrides it.
func (s UserFacadeStub) IssueToken(ctx context.Context, userID string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(ctx, userID)
	}
	return "token-" + userID, nil
}

// UserStatus returns an empty status for the user.
func (s UserFacadeStub) UserStatus(ctx context.Context, userID string) (model.UserStatus, error) {
	if s.StatusFn != nil {
		return s.StatusFn(ctx, userID)
	}
	return model.UserStatus{UserID: userID, OrderCounts: map[model.OrderStatus]int{}}, nil
}

// OrderHistory returns preconfigured history.
func (s UserFacadeStub) OrderHistory(ctx context.Context, userID string) ([]model.OrderHistoryEntry, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, userID)
	}
	return []model.OrderHistoryEntry{{Order: model.Order{ID: "O1", UserID: userID, Status: model.OrderStatusPaid}, ProductName: "Product"}}, nil
}

// Events returns preconfigured journal entries.
func (s UserFacadeStub) Events(ctx context.Context, userID string) ([]model.LedgerEvent, error) {
	if s.EventsFn != nil {
		return s.EventsFn(ctx, userID)
	}
	return []model.LedgerEvent{{ID: 1, UserID: userID, Kind: model.EventUserRegistered, RecordedAt: time.Unix(0, 0)}}, nil
}

// OrderFacadeStub provides controllable behaviour for order placement.
type OrderFacadeStub struct {
	PlaceFn func(context.Context, string, string, int, model.PaymentMode) (model.Order, error)
}

// PlaceOrder delegates to provided function or returns a paid order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, userID, productID string, quantity int, mode model.PaymentMode) (model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, userID, productID, quantity, mode)
	}
	return model.Order{ID: "O1", UserID: userID, ProductID: productID, Quantity: quantity, PaymentMode: mode, Status: model.OrderStatusPaid}, nil
}

// PaymentFacadeStub simulates dues clearing.
type PaymentFacadeStub struct {
	ClearFn  func(context.Context, string, decimal.Decimal) (model.PaymentResult, error)
	SettleFn func(context.Context, string) (int, error)
}

// ClearDues returns the whole amount as leftover by default.
func (s PaymentFacadeStub) ClearDues(ctx context.Context, userID string, amount decimal.Decimal) (model.PaymentResult, error) {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID, amount)
	}
	return model.PaymentResult{Applied: decimal.Zero, Leftover: amount}, nil
}

// SettleDefaults reports no new defaults by default.
func (s PaymentFacadeStub) SettleDefaults(ctx context.Context, userID string) (int, error) {
	if s.SettleFn != nil {
		return s.SettleFn(ctx, userID)
	}
	return 0, nil
}

// HealthFacadeStub returns Err from HealthCheck.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.Err
}

// BNPLFacadeStub aggregates facade dependencies for HTTP layer tests.
type BNPLFacadeStub struct {
	CatalogFacadeStub
	UserFacadeStub
	OrderFacadeStub
	PaymentFacadeStub
	TokenParserStub
	HealthFacadeStub
}

// SweepFacadeStub mimics worker interactions with the BNPL facade.
type SweepFacadeStub struct {
	IDs      []string
	IDsFn    func(context.Context) ([]string, error)
	SettleFn func(context.Context, string) (int, error)

	mu      sync.Mutex
	Settled []string
}

// UserIDs returns configured identifiers.
func (s *SweepFacadeStub) UserIDs(ctx context.Context) ([]string, error) {
	if s.IDsFn != nil {
		return s.IDsFn(ctx)
	}
	return s.IDs, nil
}

// SettleDefaults records the user and delegates to SettleFn when set.
func (s *SweepFacadeStub) SettleDefaults(ctx context.Context, userID string) (int, error) {
	s.mu.Lock()
	s.Settled = append(s.Settled, userID)
	s.mu.Unlock()
	if s.SettleFn != nil {
		return s.SettleFn(ctx, userID)
	}
	return 0, nil
}

// SettledUsers returns a copy of the users passed to SettleDefaults.
func (s *SweepFacadeStub) SettledUsers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.Settled...)
}
