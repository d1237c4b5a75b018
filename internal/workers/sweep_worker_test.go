package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/quarantine-vault/internal/logger"
)

// countingSweeper counts calls and fails the first failFirst of them.
type countingSweeper struct {
	mu        sync.Mutex
	calls     int
	failFirst int
	running   int
	overlap   bool
}

func (s *countingSweeper) SweepExpired(context.Context, time.Time) (int, error) {
	s.mu.Lock()
	s.calls++
	s.running++
	if s.running > 1 {
		s.overlap = true
	}
	fail := s.calls <= s.failFirst
	s.mu.Unlock()

	time.Sleep(2 * time.Millisecond)

	s.mu.Lock()
	s.running--
	s.mu.Unlock()

	if fail {
		return 0, errors.New("object store unavailable")
	}
	return 1, nil
}

func (s *countingSweeper) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestSweepWorker_TicksUntilStopped(t *testing.T) {
	sweeper := &countingSweeper{}
	w := NewSweepWorker(sweeper, 5*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	require.Eventually(t, func() bool { return sweeper.Calls() >= 3 }, time.Second, time.Millisecond)
	w.Stop()

	calls := sweeper.Calls()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, calls, sweeper.Calls(), "no sweeps after Stop returns")
	assert.False(t, sweeper.overlap)
}

func TestSweepWorker_KeepsRunningAfterFailure(t *testing.T) {
	sweeper := &countingSweeper{failFirst: 2}
	w := NewSweepWorker(sweeper, 5*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	defer w.Stop()

	assert.Eventually(t, func() bool { return sweeper.Calls() > 2 }, time.Second, time.Millisecond)
}

func TestSweepWorker_ContextCancelStops(t *testing.T) {
	sweeper := &countingSweeper{}
	w := NewSweepWorker(sweeper, 5*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	require.Eventually(t, func() bool { return sweeper.Calls() >= 1 }, time.Second, time.Millisecond)
	cancel()

	// Stop after cancel still returns
	w.Stop()
}

func TestSweepWorker_StopWhenIdle(t *testing.T) {
	w := NewSweepWorker(&countingSweeper{}, time.Minute, logger.Nop())
	w.Stop()
	w.Stop()
}

func TestSweepWorker_DefaultInterval(t *testing.T) {
	w := NewSweepWorker(&countingSweeper{}, 0, logger.Nop()).(*sweepWorker)
	assert.Equal(t, defaultSweepInterval, w.interval)
}

func TestSweepWorker_RestartReplacesLoop(t *testing.T) {
	sweeper := &countingSweeper{}
	w := NewSweepWorker(sweeper, 5*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	w.Start(context.Background())
	require.Eventually(t, func() bool { return sweeper.Calls() >= 2 }, time.Second, time.Millisecond)
	w.Stop()

	assert.False(t, sweeper.overlap, "a restart must not leave two loops running")
}
