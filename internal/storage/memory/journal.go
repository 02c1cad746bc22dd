package memory

import (
	"context"
	"sync"

	"github.com/polkiloo/bnplmart/internal/domain/model"
)

// Journal keeps ledger events in process memory. It is used when no database is configured.
type Journal struct {
	mu     sync.RWMutex
	nextID int64
	events []model.LedgerEvent
}

// NewJournal constructs an empty in-memory journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Append assigns sequential ids and stores events.
func (j *Journal) Append(ctx context.Context, events ...model.LedgerEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, ev := range events {
		j.nextID++
		ev.ID = j.nextID
		j.events = append(j.events, ev)
	}
	return nil
}

// ListByUser returns the user's events in append order.
func (j *Journal) ListByUser(ctx context.Context, userID string) ([]model.LedgerEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	j.mu.RLock()
	defer j.mu.RUnlock()
	var out []model.LedgerEvent
	for _, ev := range j.events {
		if ev.UserID == userID {
			out = append(out, ev)
		}
	}
	return out, nil
}

// HealthCheck always succeeds.
func (j *Journal) HealthCheck(context.Context) error {
	return nil
}
