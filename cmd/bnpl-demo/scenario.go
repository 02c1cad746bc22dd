package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/bnplmart/internal/domain/model"
	"github.com/polkiloo/bnplmart/internal/pkg/clock"
	"github.com/polkiloo/bnplmart/internal/storage/memory"
	"github.com/polkiloo/bnplmart/internal/usecase"
)

type demo struct {
	ctx    context.Context
	w      io.Writer
	engine *usecase.RulesEngine
}

func (d *demo) section(title string) {
	fmt.Fprintf(d.w, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

func (d *demo) printf(format string, args ...any) {
	fmt.Fprintf(d.w, format, args...)
}

func (d *demo) place(userID, productID string, qty int, mode model.PaymentMode) (model.Order, bool) {
	order, err := d.engine.PlaceOrder(d.ctx, userID, productID, qty, mode)
	if err != nil {
		d.printf("   rejected: %s x%d for %s (%s): %v\n", productID, qty, userID, mode, err)
		return model.Order{}, false
	}
	d.printf("   placed %s: %s x%d for %s, %s %s, status %s\n",
		shortID(order.ID), productID, qty, userID, order.TotalAmount.StringFixed(model.MoneyPlaces), mode, order.Status)
	return order, true
}

func (d *demo) pay(userID string, amount string) {
	result, err := d.engine.ClearDues(d.ctx, userID, decimal.RequireFromString(amount))
	if err != nil {
		d.printf("   payment of %s by %s rejected: %v\n", amount, userID, err)
		return
	}
	d.printf("   %s paid %s: applied %s, leftover %s\n", userID, amount,
		result.Applied.StringFixed(model.MoneyPlaces), result.Leftover.StringFixed(model.MoneyPlaces))
	for _, a := range result.Allocations {
		d.printf("     order %s: +%s, remaining %s, %s\n", shortID(a.OrderID),
			a.Applied.StringFixed(model.MoneyPlaces), a.Remaining.StringFixed(model.MoneyPlaces), a.Status)
	}
}

func (d *demo) scenario(now *clock.Manual) error {
	d.section("Adding products to inventory")
	products := []model.Product{
		{ID: "P001", Name: "iPhone 15", Category: "Electronics", Price: decimal.RequireFromString("50999.99"), Description: "Apple smartphone"},
		{ID: "P002", Name: "MacBook Air", Category: "Electronics", Price: decimal.RequireFromString("129999.99"), Description: "Apple laptop"},
		{ID: "P003", Name: "Nike Shoes", Category: "Fashion", Price: decimal.RequireFromString("4299.99"), Description: "Running shoes"},
		{ID: "P004", Name: "Puma Shoes", Category: "Fashion", Price: decimal.RequireFromString("2299.99"), Description: "Running shoes"},
	}
	for _, p := range products {
		item, err := d.engine.Stock(d.ctx, p, 10)
		if err != nil {
			return fmt.Errorf("stock %s: %w", p.ID, err)
		}
		d.printf("   %s %s: qty %d\n", item.Product.ID, item.Product.Name, item.Quantity)
	}

	d.section("Adding users")
	users := []struct {
		id, name, limit string
	}{
		{"U001", "Rahul", "52000"},
		{"U002", "Rohit", "2000"},
		{"U003", "Aman", "1000"},
	}
	for _, u := range users {
		if _, err := d.engine.RegisterUser(d.ctx, u.id, u.name, decimal.RequireFromString(u.limit)); err != nil {
			return fmt.Errorf("register %s: %w", u.id, err)
		}
		d.printf("   %s %s: limit %s\n", u.id, u.name, u.limit)
	}

	d.section("Order scenarios")
	d.printf("1. prepaid order\n")
	d.place("U001", "P003", 2, model.PaymentModePrepaid)
	d.printf("2. BNPL order\n")
	d.place("U001", "P001", 1, model.PaymentModeBNPL)
	d.printf("3. BNPL order over the credit limit\n")
	d.place("U002", "P002", 2, model.PaymentModeBNPL)
	d.printf("4. order with insufficient inventory\n")
	d.place("U001", "P001", 15, model.PaymentModePrepaid)
	d.printf("5. several BNPL orders\n")
	d.place("U002", "P003", 5, model.PaymentModeBNPL)
	d.place("U002", "P004", 3, model.PaymentModeBNPL)

	d.section("Payment clearing")
	d.printf("1. partial payment\n")
	d.pay("U001", "500")
	d.printf("2. further payment\n")
	d.pay("U001", "600")

	d.section("Status queries")
	d.printf("1. inventory\n")
	for _, item := range d.engine.Inventory(d.ctx) {
		d.printf("   %s: %s - qty %d, price %s\n", item.Product.ID, item.Product.Name, item.Quantity,
			item.Product.Price.StringFixed(model.MoneyPlaces))
	}
	d.printf("2. users\n")
	for _, id := range []string{"U001", "U002", "U003"} {
		status, err := d.engine.UserStatus(d.ctx, id)
		if err != nil {
			return fmt.Errorf("status %s: %w", id, err)
		}
		d.printf("   %s: credit %s/%s, dues %s, orders %d\n", id,
			status.AvailableCredit.StringFixed(model.MoneyPlaces), status.CreditLimit.StringFixed(model.MoneyPlaces),
			status.TotalPendingDues.StringFixed(model.MoneyPlaces), status.TotalOrders)
	}
	d.printf("3. order history for U002\n")
	history, err := d.engine.OrderHistory(d.ctx, "U002")
	if err != nil {
		return fmt.Errorf("history U002: %w", err)
	}
	for _, entry := range history {
		d.printf("   order %s: %s x%d - %s (%s) - %s\n", shortID(entry.ID), entry.ProductName, entry.Quantity,
			entry.TotalAmount.StringFixed(model.MoneyPlaces), entry.PaymentMode, entry.Status)
	}

	d.section("Blacklisting scenario")
	if _, err := d.engine.RegisterUser(d.ctx, "U999", "Test User", decimal.NewFromInt(15000)); err != nil {
		return fmt.Errorf("register U999: %w", err)
	}
	d.printf("1. three BNPL orders for U999\n")
	d.place("U999", "P004", 2, model.PaymentModeBNPL)
	d.place("U999", "P003", 1, model.PaymentModeBNPL)
	d.place("U999", "P004", 1, model.PaymentModeBNPL)

	now.Advance(usecase.DefaultBNPLTerm + 24*time.Hour)
	d.printf("2. clock advanced past every due date, settling defaults\n")
	n, err := d.engine.SettleDefaults(d.ctx, "U999")
	if err != nil {
		return fmt.Errorf("settle U999: %w", err)
	}
	status, err := d.engine.UserStatus(d.ctx, "U999")
	if err != nil {
		return fmt.Errorf("status U999: %w", err)
	}
	d.printf("   newly defaulted %d, default count %d, blacklisted %t\n", n, status.DefaultCount, status.IsBlacklisted)

	d.printf("3. BNPL order for blacklisted user\n")
	d.place("U999", "P004", 1, model.PaymentModeBNPL)
	d.printf("4. prepaid order for blacklisted user\n")
	d.place("U999", "P004", 1, model.PaymentModePrepaid)
	return nil
}

func (d *demo) edgeCases(log *slog.Logger) error {
	edge := &demo{ctx: d.ctx, w: d.w, engine: usecase.NewRulesEngine(memory.NewJournal(), log)}

	edge.section("Edge cases")
	edge.printf("1. unknown user\n")
	edge.place("INVALID_USER", "P001", 1, model.PaymentModePrepaid)

	if _, err := edge.engine.RegisterUser(edge.ctx, "TEST", "Test User", decimal.NewFromInt(5000)); err != nil {
		return fmt.Errorf("register TEST: %w", err)
	}
	edge.printf("2. unknown product\n")
	edge.place("TEST", "INVALID_PRODUCT", 1, model.PaymentModePrepaid)

	if _, err := edge.engine.Stock(edge.ctx, model.Product{ID: "TEST_P", Name: "Test Product", Price: decimal.NewFromInt(10)}, 5); err != nil {
		return fmt.Errorf("stock TEST_P: %w", err)
	}
	edge.printf("3. zero quantity\n")
	edge.place("TEST", "TEST_P", 0, model.PaymentModePrepaid)
	edge.printf("4. negative payment\n")
	edge.pay("TEST", "-100")
	edge.printf("5. one cent payment with nothing due\n")
	edge.pay("TEST", "0.01")
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
