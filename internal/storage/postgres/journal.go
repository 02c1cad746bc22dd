package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/polkiloo/bnplmart/internal/domain/model"
)

type journalRepository struct {
	storage *Storage
}

// Append writes events in one transaction so a batch is stored whole or not at all.
func (r *journalRepository) Append(ctx context.Context, events ...model.LedgerEvent) error {
	if len(events) == 0 {
		return nil
	}

	const query = `INSERT INTO ledger_events (user_id, kind, order_id, amount, detail, recorded_at)
                   VALUES ($1, $2, $3, $4, $5, $6)`
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, ev := range events {
			if _, err := tx.Exec(ctx, query, ev.UserID, string(ev.Kind), ev.OrderID, ev.Amount.StringFixed(model.MoneyPlaces), ev.Detail, ev.RecordedAt); err != nil {
				return fmt.Errorf("insert %s event: %w", ev.Kind, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if r.storage.logger != nil {
		r.storage.logger.Debug("ledger events stored", slog.Int("count", len(events)))
	}
	return nil
}

func (r *journalRepository) ListByUser(ctx context.Context, userID string) ([]model.LedgerEvent, error) {
	const query = `SELECT id, user_id, kind, order_id, amount::text, detail, recorded_at
                   FROM ledger_events WHERE user_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.LedgerEvent
	for rows.Next() {
		var (
			ev     model.LedgerEvent
			kind   string
			amount string
		)
		if err := rows.Scan(&ev.ID, &ev.UserID, &kind, &ev.OrderID, &amount, &ev.Detail, &ev.RecordedAt); err != nil {
			return nil, err
		}
		if ev.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse amount of event %d: %w", ev.ID, err)
		}
		ev.Kind = model.EventKind(kind)
		result = append(result, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
