package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/bnplmart/internal/domain/model"
	"github.com/polkiloo/bnplmart/internal/domain/repository"
	"github.com/polkiloo/bnplmart/internal/pkg/auth"
	"github.com/polkiloo/bnplmart/internal/storage"
	"github.com/polkiloo/bnplmart/internal/usecase"
)

// BNPLFacade adapts the rules engine, journal and token strategy to the HTTP
// and worker layers.
type BNPLFacade struct {
	engine  *usecase.RulesEngine
	journal repository.JournalRepository
	health  storage.HealthChecker
	tokens  auth.Strategy
}

func NewBNPLFacade(engine *usecase.RulesEngine, journal repository.JournalRepository, health storage.HealthChecker, tokens auth.Strategy) *BNPLFacade {
	return &BNPLFacade{engine: engine, journal: journal, health: health, tokens: tokens}
}

func (f *BNPLFacade) Stock(ctx context.Context, product model.Product, quantity int) (model.InventoryItem, error) {
	return f.engine.Stock(ctx, product, quantity)
}

func (f *BNPLFacade) InventoryStatus(ctx context.Context, productID string) (model.InventoryItem, error) {
	return f.engine.InventoryStatus(ctx, productID)
}

func (f *BNPLFacade) Inventory(ctx context.Context) ([]model.InventoryItem, error) {
	return f.engine.Inventory(ctx), nil
}

func (f *BNPLFacade) RegisterUser(ctx context.Context, id, name string, creditLimit decimal.Decimal) (model.User, error) {
	return f.engine.RegisterUser(ctx, id, name, creditLimit)
}

// IssueToken signs an access token for a registered user.
func (f *BNPLFacade) IssueToken(ctx context.Context, userID string) (string, error) {
	if _, err := f.engine.User(ctx, userID); err != nil {
		return "", err
	}
	return f.tokens.IssueToken(userID)
}

func (f *BNPLFacade) ParseToken(token string) (string, error) {
	return f.tokens.ParseToken(token)
}

func (f *BNPLFacade) UserStatus(ctx context.Context, userID string) (model.UserStatus, error) {
	return f.engine.UserStatus(ctx, userID)
}

func (f *BNPLFacade) OrderHistory(ctx context.Context, userID string) ([]model.OrderHistoryEntry, error) {
	return f.engine.OrderHistory(ctx, userID)
}

// Events returns the user's journal entries. Unknown users yield ErrUserNotFound.
func (f *BNPLFacade) Events(ctx context.Context, userID string) ([]model.LedgerEvent, error) {
	if _, err := f.engine.User(ctx, userID); err != nil {
		return nil, err
	}
	return f.journal.ListByUser(ctx, userID)
}

func (f *BNPLFacade) PlaceOrder(ctx context.Context, userID, productID string, quantity int, mode model.PaymentMode) (model.Order, error) {
	return f.engine.PlaceOrder(ctx, userID, productID, quantity, mode)
}

func (f *BNPLFacade) ClearDues(ctx context.Context, userID string, amount decimal.Decimal) (model.PaymentResult, error) {
	return f.engine.ClearDues(ctx, userID, amount)
}

func (f *BNPLFacade) SettleDefaults(ctx context.Context, userID string) (int, error) {
	return f.engine.SettleDefaults(ctx, userID)
}

func (f *BNPLFacade) UserIDs(ctx context.Context) ([]string, error) {
	return f.engine.UserIDs(ctx), nil
}

func (f *BNPLFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
