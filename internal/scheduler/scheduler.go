// Package scheduler runs named one-off tasks after a delay.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Task is the work of a scheduled job.
type Task func(ctx context.Context) error

type pendingTask struct {
	timer *time.Timer
}

// Queue holds at most one pending task per name.
type Queue struct {
	mu      sync.Mutex
	pending map[string]*pendingTask
	closed  bool

	ctx    context.Context //nolint:containedctx
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New returns an empty Queue. Tasks get a context derived from ctx.
func New(ctx context.Context) *Queue {
	ctx, cancel := context.WithCancel(ctx)

	return &Queue{
		pending: make(map[string]*pendingTask),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// ScheduleOnce runs task after delay. It returns false when a task with this name is
// already pending or the queue was shut down.
func (q *Queue) ScheduleOnce(name string, delay time.Duration, task Task) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}

	if _, ok := q.pending[name]; ok {
		return false
	}

	p := &pendingTask{}

	q.wg.Add(1)
	p.timer = time.AfterFunc(delay, func() {
		q.run(name, p, task)
	})
	q.pending[name] = p

	log.Debug().Str("task", name).Dur("delay", delay).Msg("task scheduled")

	return true
}

// Scheduled reports whether a task with this name is waiting to run.
func (q *Queue) Scheduled(name string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	_, ok := q.pending[name]

	return ok
}

// Cancel removes a pending task. It returns false when no such task is waiting.
func (q *Queue) Cancel(name string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.stop(name)
}

// Wait blocks until no task is pending or running.
func (q *Queue) Wait() {
	q.wg.Wait()
}

// Shutdown drops pending tasks, cancels the context of running ones and waits for them.
func (q *Queue) Shutdown() {
	q.mu.Lock()
	q.closed = true

	for name := range q.pending {
		q.stop(name)
	}
	q.mu.Unlock()

	q.cancel()
	q.wg.Wait()
}

// stop must be called with q.mu held.
func (q *Queue) stop(name string) bool {
	p, ok := q.pending[name]
	if !ok {
		return false
	}

	delete(q.pending, name)

	// the timer already fired, run owns the wait group slot
	if !p.timer.Stop() {
		return false
	}

	q.wg.Done()

	log.Debug().Str("task", name).Msg("task cancelled")

	return true
}

func (q *Queue) run(name string, p *pendingTask, task Task) {
	defer q.wg.Done()

	q.mu.Lock()
	if q.pending[name] == p {
		delete(q.pending, name)
	}
	q.mu.Unlock()

	runID := uuid.New().String()
	logger := log.With().Str("task", name).Str("run", runID).Logger()
	start := time.Now()

	logger.Debug().Msg("task started")

	if err := task(logger.WithContext(q.ctx)); err != nil {
		logger.Error().Err(err).Dur("took", time.Since(start)).Msg("task failed")
		return
	}

	logger.Debug().Dur("took", time.Since(start)).Msg("task done")
}
