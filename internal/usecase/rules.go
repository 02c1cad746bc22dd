package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/bnplmart/internal/domain/errors"
	"github.com/polkiloo/bnplmart/internal/domain/model"
	"github.com/polkiloo/bnplmart/internal/domain/repository"
)

// RulesEngine composes the catalog, credit ledger, order book and payment
// allocator. Every operation runs inside one critical section and performs all
// checks before the first mutation, so a failed call leaves no trace.
type RulesEngine struct {
	mu sync.Mutex

	catalog   *Catalog
	credit    *CreditLedger
	orders    *OrderBook
	allocator *PaymentAllocator

	journal repository.JournalRepository
	logger  *slog.Logger
}

// NewRulesEngine constructs RulesEngine with empty state. A nil journal disables auditing.
func NewRulesEngine(journal repository.JournalRepository, logger *slog.Logger, opts ...OrderBookOption) *RulesEngine {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	catalog := NewCatalog()
	credit := NewCreditLedger()
	orders := NewOrderBook(opts...)
	return &RulesEngine{
		catalog:   catalog,
		credit:    credit,
		orders:    orders,
		allocator: NewPaymentAllocator(orders, credit),
		journal:   journal,
		logger:    logger,
	}
}

// Stock adds inventory for a product.
func (e *RulesEngine) Stock(ctx context.Context, product model.Product, quantity int) (model.InventoryItem, error) {
	e.mu.Lock()
	item, err := e.catalog.Stock(product, quantity)
	now := e.orders.Now()
	e.mu.Unlock()
	if err != nil {
		return model.InventoryItem{}, err
	}

	e.record(ctx, model.LedgerEvent{
		Kind:       model.EventProductStocked,
		Amount:     item.Product.Price,
		Detail:     fmt.Sprintf("product=%s added=%d on_hand=%d", item.Product.ID, quantity, item.Quantity),
		RecordedAt: now,
	})
	return item, nil
}

// RegisterUser opens a credit line.
func (e *RulesEngine) RegisterUser(ctx context.Context, id, name string, creditLimit decimal.Decimal) (model.User, error) {
	e.mu.Lock()
	user, err := e.credit.Register(id, name, creditLimit)
	now := e.orders.Now()
	e.mu.Unlock()
	if err != nil {
		return model.User{}, err
	}

	e.record(ctx, model.LedgerEvent{
		UserID:     user.ID,
		Kind:       model.EventUserRegistered,
		Amount:     user.CreditLimit,
		Detail:     "credit line opened",
		RecordedAt: now,
	})
	return user, nil
}

// PlaceOrder validates and books an order. The user is looked up before the
// request itself is validated, and defaults are reconciled before any credit
// decision so the blacklist flag is current.
func (e *RulesEngine) PlaceOrder(ctx context.Context, userID, productID string, quantity int, mode model.PaymentMode) (model.Order, error) {
	e.mu.Lock()
	order, events, err := e.placeOrderLocked(userID, productID, quantity, mode)
	e.mu.Unlock()

	e.record(ctx, events...)
	if err != nil {
		e.logger.Info("order rejected",
			slog.String("user", userID),
			slog.String("product", productID),
			slog.Int("quantity", quantity),
			slog.String("mode", string(mode)),
			slog.String("reason", err.Error()),
		)
		return model.Order{}, err
	}

	e.logger.Info("order placed",
		slog.String("order", order.ID),
		slog.String("user", userID),
		slog.String("mode", string(mode)),
		slog.String("total", order.TotalAmount.StringFixed(model.MoneyPlaces)),
	)
	return order, nil
}

func (e *RulesEngine) placeOrderLocked(userID, productID string, quantity int, mode model.PaymentMode) (model.Order, []model.LedgerEvent, error) {
	if _, err := e.credit.Get(userID); err != nil {
		return model.Order{}, nil, err
	}
	if err := ValidateQuantity(quantity); err != nil {
		return model.Order{}, nil, err
	}
	if err := ValidatePaymentMode(mode); err != nil {
		return model.Order{}, nil, err
	}

	events, err := e.reconcileLocked(userID)
	if err != nil {
		return model.Order{}, events, err
	}

	product, err := e.catalog.CheckAvailable(productID, quantity)
	if err != nil {
		return model.Order{}, events, err
	}

	total := model.Money(product.Price.Mul(decimal.NewFromInt(int64(quantity))))

	if mode == model.PaymentModeBNPL {
		if err := e.credit.CheckBNPL(userID, total); err != nil {
			return model.Order{}, events, err
		}
		if !total.IsPositive() {
			return model.Order{}, events, fmt.Errorf("%w: nothing to defer on a zero total", domainErrors.ErrInvalidAmount)
		}
	}

	if err := e.catalog.Reserve(productID, quantity); err != nil {
		return model.Order{}, events, err
	}
	order := e.orders.Create(userID, productID, quantity, total, mode)
	if mode == model.PaymentModeBNPL {
		if err := e.credit.Charge(userID, total); err != nil {
			return model.Order{}, events, err
		}
	}

	events = append(events, model.LedgerEvent{
		UserID:     userID,
		Kind:       model.EventOrderPlaced,
		OrderID:    order.ID,
		Amount:     total,
		Detail:     fmt.Sprintf("mode=%s product=%s quantity=%d", mode, productID, quantity),
		RecordedAt: order.OrderDate,
	})
	return order, events, nil
}

// ClearDues applies a payment to the user's outstanding BNPL orders.
func (e *RulesEngine) ClearDues(ctx context.Context, userID string, amount decimal.Decimal) (model.PaymentResult, error) {
	e.mu.Lock()
	result, now, err := e.clearDuesLocked(userID, amount)
	e.mu.Unlock()
	if err != nil {
		return model.PaymentResult{}, err
	}

	events := make([]model.LedgerEvent, 0, len(result.Allocations))
	for _, a := range result.Allocations {
		events = append(events, model.LedgerEvent{
			UserID:     userID,
			Kind:       model.EventPaymentApplied,
			OrderID:    a.OrderID,
			Amount:     a.Applied,
			Detail:     fmt.Sprintf("remaining=%s status=%s", a.Remaining.StringFixed(model.MoneyPlaces), a.Status),
			RecordedAt: now,
		})
	}
	e.record(ctx, events...)

	e.logger.Info("dues cleared",
		slog.String("user", userID),
		slog.String("applied", result.Applied.StringFixed(model.MoneyPlaces)),
		slog.String("leftover", result.Leftover.StringFixed(model.MoneyPlaces)),
	)
	return result, nil
}

func (e *RulesEngine) clearDuesLocked(userID string, amount decimal.Decimal) (model.PaymentResult, time.Time, error) {
	if _, err := e.credit.Get(userID); err != nil {
		return model.PaymentResult{}, time.Time{}, err
	}
	result, err := e.allocator.Allocate(userID, amount)
	return result, e.orders.Now(), err
}

// SettleDefaults reconciles overdue orders for the user and returns how many
// were newly marked DEFAULTED.
func (e *RulesEngine) SettleDefaults(ctx context.Context, userID string) (int, error) {
	e.mu.Lock()
	var events []model.LedgerEvent
	_, err := e.credit.Get(userID)
	if err == nil {
		events, err = e.reconcileLocked(userID)
	}
	e.mu.Unlock()

	e.record(ctx, events...)
	if err != nil {
		return 0, err
	}

	var count int
	for _, ev := range events {
		if ev.Kind == model.EventOrderDefaulted {
			count++
		}
	}
	return count, nil
}

func (e *RulesEngine) reconcileLocked(userID string) ([]model.LedgerEvent, error) {
	defaulted := e.orders.ReconcileDefaults(userID)
	if len(defaulted) == 0 {
		return nil, nil
	}

	blacklisted, err := e.credit.RecordDefaults(userID, len(defaulted))
	if err != nil {
		return nil, err
	}

	now := e.orders.Now()
	events := make([]model.LedgerEvent, 0, len(defaulted)+1)
	for _, order := range defaulted {
		events = append(events, model.LedgerEvent{
			UserID:     userID,
			Kind:       model.EventOrderDefaulted,
			OrderID:    order.ID,
			Amount:     order.RemainingAmount,
			Detail:     fmt.Sprintf("due=%s", order.DueDate.Format(time.RFC3339)),
			RecordedAt: now,
		})
	}
	e.logger.Warn("orders defaulted", slog.String("user", userID), slog.Int("count", len(defaulted)))

	if blacklisted {
		user, _ := e.credit.Get(userID)
		events = append(events, model.LedgerEvent{
			UserID:     userID,
			Kind:       model.EventUserBlacklisted,
			Detail:     fmt.Sprintf("default_count=%d", user.DefaultCount),
			RecordedAt: now,
		})
		e.logger.Warn("user blacklisted", slog.String("user", userID), slog.Int("default_count", user.DefaultCount))
	}
	return events, nil
}

// InventoryStatus returns one inventory item.
func (e *RulesEngine) InventoryStatus(ctx context.Context, productID string) (model.InventoryItem, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.Status(productID)
}

// Inventory returns every inventory item.
func (e *RulesEngine) Inventory(ctx context.Context) []model.InventoryItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.Items()
}

// UserStatus reconciles defaults and summarizes the user's credit and orders.
func (e *RulesEngine) UserStatus(ctx context.Context, userID string) (model.UserStatus, error) {
	e.mu.Lock()
	status, events, err := e.userStatusLocked(userID)
	e.mu.Unlock()

	e.record(ctx, events...)
	return status, err
}

func (e *RulesEngine) userStatusLocked(userID string) (model.UserStatus, []model.LedgerEvent, error) {
	if _, err := e.credit.Get(userID); err != nil {
		return model.UserStatus{}, nil, err
	}
	events, err := e.reconcileLocked(userID)
	if err != nil {
		return model.UserStatus{}, events, err
	}
	user, err := e.credit.Get(userID)
	if err != nil {
		return model.UserStatus{}, events, err
	}

	orders := e.orders.ListByUser(userID)
	status := model.UserStatus{
		UserID:           user.ID,
		Name:             user.Name,
		CreditLimit:      user.CreditLimit,
		UsedCredit:       user.UsedCredit,
		AvailableCredit:  user.AvailableCredit(),
		IsBlacklisted:    user.IsBlacklisted,
		DefaultCount:     user.DefaultCount,
		TotalPendingDues: decimal.Zero,
		TotalOrders:      len(orders),
		OrderCounts: map[model.OrderStatus]int{
			model.OrderStatusPlaced:    0,
			model.OrderStatusPaid:      0,
			model.OrderStatusDefaulted: 0,
		},
	}
	for i := range orders {
		status.OrderCounts[orders[i].Status]++
		if orders[i].Outstanding() {
			status.TotalPendingDues = status.TotalPendingDues.Add(orders[i].RemainingAmount)
		}
	}
	return status, events, nil
}

// OrderHistory reconciles defaults and returns the user's orders in placement order.
func (e *RulesEngine) OrderHistory(ctx context.Context, userID string) ([]model.OrderHistoryEntry, error) {
	e.mu.Lock()
	history, events, err := e.orderHistoryLocked(userID)
	e.mu.Unlock()

	e.record(ctx, events...)
	return history, err
}

func (e *RulesEngine) orderHistoryLocked(userID string) ([]model.OrderHistoryEntry, []model.LedgerEvent, error) {
	if _, err := e.credit.Get(userID); err != nil {
		return nil, nil, err
	}
	events, err := e.reconcileLocked(userID)
	if err != nil {
		return nil, events, err
	}

	orders := e.orders.ListByUser(userID)
	history := make([]model.OrderHistoryEntry, 0, len(orders))
	for _, order := range orders {
		history = append(history, model.OrderHistoryEntry{
			Order:       order,
			ProductName: e.catalog.ProductName(order.ProductID),
			IsDefaulted: e.orders.IsDefaulted(order),
		})
	}
	return history, events, nil
}

// User returns a raw snapshot of the user's credit line without reconciling.
func (e *RulesEngine) User(ctx context.Context, userID string) (model.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.credit.Get(userID)
}

// UserIDs lists every registered user.
func (e *RulesEngine) UserIDs(ctx context.Context) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.credit.UserIDs()
}

func (e *RulesEngine) record(ctx context.Context, events ...model.LedgerEvent) {
	if e.journal == nil || len(events) == 0 {
		return
	}
	if err := e.journal.Append(ctx, events...); err != nil {
		e.logger.Error("append ledger events failed",
			slog.Int("events", len(events)),
			slog.String("error", err.Error()),
		)
	}
}
