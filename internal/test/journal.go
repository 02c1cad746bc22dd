package test

import (
	"context"
	"sync"

	"github.com/polkiloo/bnplmart/internal/domain/model"
)

// JournalRepositoryStub records appended ledger events in memory.
type JournalRepositoryStub struct {
	AppendFn     func(context.Context, ...model.LedgerEvent) error
	ListByUserFn func(context.Context, string) ([]model.LedgerEvent, error)
	Err          error

	mu     sync.Mutex
	Events []model.LedgerEvent
}

// Append stores events unless an override or error is configured.
func (s *JournalRepositoryStub) Append(ctx context.Context, events ...model.LedgerEvent) error {
	if s.AppendFn != nil {
		return s.AppendFn(ctx, events...)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, events...)
	return nil
}

// ListByUser returns stored events for the user.
func (s *JournalRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.LedgerEvent, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.LedgerEvent
	for _, ev := range s.Events {
		if ev.UserID == userID {
			out = append(out, ev)
		}
	}
	return out, nil
}

// Kinds returns the kinds of every recorded event in append order.
func (s *JournalRepositoryStub) Kinds() []model.EventKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.EventKind, 0, len(s.Events))
	for _, ev := range s.Events {
		out = append(out, ev.Kind)
	}
	return out
}
