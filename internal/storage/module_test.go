package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/bnplmart/internal/config"
	"github.com/polkiloo/bnplmart/internal/storage/memory"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewBackendDefaultsToMemory(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	res, err := newBackend(backendParams{
		Ctx:       context.Background(),
		Config:    &config.Config{},
		Logger:    discardLogger(),
		Lifecycle: lc,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := res.Journal.(*memory.Journal); !ok {
		t.Fatalf("expected memory journal, got %T", res.Journal)
	}
	if err := res.Health.HealthCheck(context.Background()); err != nil {
		t.Fatalf("unexpected health error: %v", err)
	}
}

func TestNewBackendRejectsBadDSN(t *testing.T) {
	_, err := newBackend(backendParams{
		Ctx:       context.Background(),
		Config:    &config.Config{DatabaseURI: ":://bad"},
		Logger:    discardLogger(),
		Lifecycle: fxtest.NewLifecycle(t),
	})
	if err == nil {
		t.Fatal("expected error for malformed dsn")
	}
}

type closeRecorder struct {
	closed bool
}

func (c *closeRecorder) Close() { c.closed = true }

func TestRegisterLifecycleClosesOnStop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	rec := &closeRecorder{}
	registerLifecycle(lc, rec)

	if err := lc.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if rec.closed {
		t.Fatal("closed before stop")
	}
	if err := lc.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if !rec.closed {
		t.Fatal("expected close on stop")
	}
}
