package repository

import (
	"context"

	"github.com/polkiloo/bnplmart/internal/domain/model"
)

// JournalRepository stores the append-only ledger audit trail.
type JournalRepository interface {
	Append(ctx context.Context, events ...model.LedgerEvent) error
	ListByUser(ctx context.Context, userID string) ([]model.LedgerEvent, error)
}
