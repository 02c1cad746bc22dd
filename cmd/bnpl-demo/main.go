// Command bnpl-demo replays the sample BNPL scenario against an in-process
// rules engine and prints the outcome of every step.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/polkiloo/bnplmart/internal/logger"
	"github.com/polkiloo/bnplmart/internal/pkg/clock"
	"github.com/polkiloo/bnplmart/internal/storage/memory"
	"github.com/polkiloo/bnplmart/internal/usecase"
)

func main() {
	log := logger.NewWithWriter(os.Stderr, slog.LevelWarn)
	if err := run(context.Background(), os.Stdout, log); err != nil {
		fmt.Fprintf(os.Stderr, "demo failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, log *slog.Logger) error {
	// Advanced explicitly to push orders past their due date.
	now := clock.NewManual(time.Now().UTC())
	engine := usecase.NewRulesEngine(memory.NewJournal(), log, usecase.WithClock(now.Now))
	d := &demo{ctx: ctx, w: w, engine: engine}

	if err := d.scenario(now); err != nil {
		return err
	}
	return d.edgeCases(log)
}
