package test

import (
	"strconv"
	"sync"
	"time"

	"github.com/polkiloo/bnplmart/internal/pkg/clock"
)

// ManualClock is a controllable time source.
type ManualClock = clock.Manual

// NewManualClock returns a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return clock.NewManual(start)
}

// SequentialIDs returns a generator yielding prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	var (
		mu sync.Mutex
		n  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}
