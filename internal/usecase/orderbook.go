package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/bnplmart/internal/domain/errors"
	"github.com/polkiloo/bnplmart/internal/domain/model"
)

// DefaultBNPLTerm is the time between placing a BNPL order and its due date.
const DefaultBNPLTerm = 30 * 24 * time.Hour

// OrderBookOption customizes an OrderBook.
type OrderBookOption func(*OrderBook)

// WithClock replaces the wall clock used for order dates and default detection.
func WithClock(now func() time.Time) OrderBookOption {
	return func(b *OrderBook) {
		if now != nil {
			b.now = now
		}
	}
}

// WithIDGenerator replaces the order id generator.
func WithIDGenerator(newID func() string) OrderBookOption {
	return func(b *OrderBook) {
		if newID != nil {
			b.newID = newID
		}
	}
}

// WithTerm sets the BNPL repayment term. Non-positive values are ignored.
func WithTerm(term time.Duration) OrderBookOption {
	return func(b *OrderBook) {
		if term > 0 {
			b.term = term
		}
	}
}

// OrderBook owns orders and drives their PLACED -> PAID / DEFAULTED lifecycle.
type OrderBook struct {
	orders map[string]*model.Order
	byUser map[string][]*model.Order

	term  time.Duration
	now   func() time.Time
	newID func() string
}

// NewOrderBook constructs an empty OrderBook.
func NewOrderBook(opts ...OrderBookOption) *OrderBook {
	b := &OrderBook{
		orders: make(map[string]*model.Order),
		byUser: make(map[string][]*model.Order),
		term:   DefaultBNPLTerm,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Now returns the current time according to the book's clock.
func (b *OrderBook) Now() time.Time {
	return b.now()
}

// Term returns the BNPL repayment term.
func (b *OrderBook) Term() time.Duration {
	return b.term
}

// Create records a new PLACED order. Validation is the caller's job.
func (b *OrderBook) Create(userID, productID string, quantity int, total decimal.Decimal, mode model.PaymentMode) model.Order {
	now := b.now()
	order := &model.Order{
		ID:          b.newID(),
		UserID:      userID,
		ProductID:   productID,
		Quantity:    quantity,
		TotalAmount: total,
		PaymentMode: mode,
		OrderDate:   now,
		Status:      model.OrderStatusPlaced,
	}

	switch mode {
	case model.PaymentModeBNPL:
		due := now.Add(b.term)
		order.DueDate = &due
		order.AmountPaid = decimal.Zero
		order.RemainingAmount = total
	default:
		order.AmountPaid = total
		order.RemainingAmount = decimal.Zero
	}

	b.orders[order.ID] = order
	b.byUser[userID] = append(b.byUser[userID], order)
	return *order
}

// ReconcileDefaults moves every overdue, unpaid order of the user to DEFAULTED and
// returns the orders transitioned by this call. Repeated calls never recount an order.
func (b *OrderBook) ReconcileDefaults(userID string) []model.Order {
	now := b.now()
	var defaulted []model.Order
	for _, order := range b.byUser[userID] {
		if order.Status != model.OrderStatusPlaced {
			continue
		}
		if order.IsDefaultedAt(now) {
			order.Status = model.OrderStatusDefaulted
			defaulted = append(defaulted, *order)
		}
	}
	return defaulted
}

// IsDefaulted evaluates the default predicate for an order at the current time.
func (b *OrderBook) IsDefaulted(order model.Order) bool {
	return order.IsDefaultedAt(b.now())
}

// OutstandingBNPL returns the user's BNPL orders with a balance, in placement order.
// The returned pointers are live and meant for PaymentAllocator.
func (b *OrderBook) OutstandingBNPL(userID string) []*model.Order {
	var out []*model.Order
	for _, order := range b.byUser[userID] {
		if order.Outstanding() {
			out = append(out, order)
		}
	}
	return out
}

// Get returns a snapshot of an order.
func (b *OrderBook) Get(orderID string) (model.Order, error) {
	order, ok := b.orders[orderID]
	if !ok {
		return model.Order{}, domainErrors.ErrOrderNotFound
	}
	return *order, nil
}

// ListByUser returns snapshots of the user's orders in placement order.
func (b *OrderBook) ListByUser(userID string) []model.Order {
	orders := b.byUser[userID]
	out := make([]model.Order, 0, len(orders))
	for _, order := range orders {
		out = append(out, *order)
	}
	return out
}
