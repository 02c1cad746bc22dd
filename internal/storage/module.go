// Package storage selects the ledger journal backend.
package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/bnplmart/internal/config"
	"github.com/polkiloo/bnplmart/internal/domain/repository"
	"github.com/polkiloo/bnplmart/internal/storage/memory"
	"github.com/polkiloo/bnplmart/internal/storage/postgres"
)

// HealthChecker reports whether the journal backend is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Module provides the journal repository and its health checker.
var Module = fx.Provide(newBackend)

type backendParams struct {
	fx.In

	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

type backendResult struct {
	fx.Out

	Journal repository.JournalRepository
	Health  HealthChecker
}

func newBackend(p backendParams) (backendResult, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Info("ledger journal kept in memory")
		j := memory.NewJournal()
		return backendResult{Journal: j, Health: j}, nil
	}

	st, err := postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
	if err != nil {
		return backendResult{}, err
	}
	registerLifecycle(p.Lifecycle, st)
	p.Logger.Info("ledger journal stored in postgres")
	return backendResult{Journal: st.Journal(), Health: st}, nil
}

type closer interface {
	Close()
}

func registerLifecycle(lc fx.Lifecycle, c closer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			c.Close()
			return nil
		},
	})
}
