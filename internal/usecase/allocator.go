package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/bnplmart/internal/domain/model"
)

// PaymentAllocator spreads a payment over a user's outstanding BNPL orders,
// earliest due date first.
type PaymentAllocator struct {
	orders *OrderBook
	credit *CreditLedger
}

// NewPaymentAllocator constructs PaymentAllocator.
func NewPaymentAllocator(orders *OrderBook, credit *CreditLedger) *PaymentAllocator {
	return &PaymentAllocator{orders: orders, credit: credit}
}

// Allocate applies amount to outstanding orders and releases the applied part of
// the user's credit. Money left after every order is settled is reported, not kept.
func (a *PaymentAllocator) Allocate(userID string, amount decimal.Decimal) (model.PaymentResult, error) {
	amount, err := NormalizeAmount(amount)
	if err != nil {
		return model.PaymentResult{}, err
	}
	if _, err := a.credit.Get(userID); err != nil {
		return model.PaymentResult{}, err
	}

	outstanding := a.orders.OutstandingBNPL(userID)
	sort.SliceStable(outstanding, func(i, j int) bool {
		return outstanding[i].DueDate.Before(*outstanding[j].DueDate)
	})

	left := amount
	result := model.PaymentResult{}
	for _, order := range outstanding {
		if !left.IsPositive() {
			break
		}

		applied := decimal.Min(left, order.RemainingAmount)
		order.AmountPaid = order.AmountPaid.Add(applied)
		order.RemainingAmount = order.RemainingAmount.Sub(applied)
		if order.RemainingAmount.IsZero() && order.Status == model.OrderStatusPlaced {
			order.Status = model.OrderStatusPaid
		}
		left = left.Sub(applied)

		result.Allocations = append(result.Allocations, model.Allocation{
			OrderID:   order.ID,
			Applied:   applied,
			Remaining: order.RemainingAmount,
			Status:    order.Status,
		})
	}

	result.Applied = amount.Sub(left)
	result.Leftover = left
	if result.Applied.IsPositive() {
		if err := a.credit.Release(userID, result.Applied); err != nil {
			return model.PaymentResult{}, err
		}
	}
	return result, nil
}
