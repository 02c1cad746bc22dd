package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// SweepFacade exposes the subset of application functionality required by the sweeper.
type SweepFacade interface {
	UserIDs(ctx context.Context) ([]string, error)
	SettleDefaults(ctx context.Context, userID string) (int, error)
}

// DefaultSweeper periodically settles overdue BNPL orders for every user
// so defaults and blacklisting happen even for users who stay idle.
type DefaultSweeper struct {
	facade   SweepFacade
	interval time.Duration
	workers  int
	logger   *slog.Logger

	jobs   chan string
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDefaultSweeper constructs the sweeper worker pool.
func NewDefaultSweeper(facade SweepFacade, interval time.Duration, workers int, logger *slog.Logger) *DefaultSweeper {
	if workers <= 0 {
		workers = 1
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &DefaultSweeper{
		facade:   facade,
		interval: interval,
		workers:  workers,
		logger:   logger,
	}
}

// Start launches background sweeping. The sweeper keeps running after ctx
// is done and stops only on Stop.
func (s *DefaultSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.jobs = make(chan string, s.workers)

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker(runCtx, s.jobs)
	}

	s.wg.Add(1)
	go s.dispatch(runCtx, s.jobs)
}

// Stop cancels sweeping and waits for all workers to finish.
func (s *DefaultSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// Sweep settles defaults for every known user once and returns how many
// orders were newly defaulted.
func (s *DefaultSweeper) Sweep(ctx context.Context) int {
	ids, err := s.facade.UserIDs(ctx)
	if err != nil {
		s.logger.Error("list users for sweep failed", slog.String("error", err.Error()))
		return 0
	}
	total := 0
	for _, id := range ids {
		total += s.settle(ctx, id)
	}
	return total
}

func (s *DefaultSweeper) dispatch(ctx context.Context, jobs chan<- string) {
	defer s.wg.Done()
	defer close(jobs)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fetchAndDispatch(ctx, jobs)
		}
	}
}

func (s *DefaultSweeper) fetchAndDispatch(ctx context.Context, jobs chan<- string) {
	ids, err := s.facade.UserIDs(ctx)
	if err != nil {
		s.logger.Error("list users for sweep failed", slog.String("error", err.Error()))
		return
	}
	for _, id := range ids {
		select {
		case <-ctx.Done():
			return
		case jobs <- id:
		}
	}
}

func (s *DefaultSweeper) worker(ctx context.Context, jobs <-chan string) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case id, ok := <-jobs:
			if !ok {
				return
			}
			s.settle(ctx, id)
		}
	}
}

func (s *DefaultSweeper) settle(ctx context.Context, userID string) int {
	n, err := s.facade.SettleDefaults(ctx, userID)
	if err != nil {
		s.logger.Error("settle defaults failed", slog.String("user_id", userID), slog.String("error", err.Error()))
		return 0
	}
	if n > 0 {
		s.logger.Info("orders defaulted by sweep", slog.String("user_id", userID), slog.Int("count", n))
	}
	return n
}
