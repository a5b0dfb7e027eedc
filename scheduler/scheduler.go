package scheduler

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"runtime/debug"
	"slices"
	"sync"
	"time"

	"github.com/df-mc/dragonfly/server/world"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ErrRunning is returned by Start if the scheduler is already running.
var ErrRunning = errors.New("scheduler: already running")

// Executor runs functions inside a world transaction.
type Executor interface {
	Exec(fn func(tx *world.Tx))
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(fn func(tx *world.Tx))

// Exec calls f(fn).
func (f ExecutorFunc) Exec(fn func(tx *world.Tx)) {
	f(fn)
}

// WorldExecutor runs sync tasks in transactions of w. The tick loop does not
// wait for the transaction to complete.
func WorldExecutor(w *world.World) Executor {
	return ExecutorFunc(func(fn func(tx *world.Tx)) {
		w.Exec(fn)
	})
}

// Scheduler runs tasks on a fixed tick clock. Sync tasks run through the
// Executor, inside a world transaction; async tasks run on a worker pool.
//
// The clock advances through Tick. Start drives Tick from a ticker at the
// configured tick rate until stopped; tests and custom loops can call Tick
// directly.
type Scheduler struct {
	exec Executor
	opts Options
	log  *slog.Logger

	mu    sync.Mutex
	tick  int64
	seq   uint64
	queue *taskQueue

	// jobs feeds the worker pool while Start runs
	jobs   chan func()
	cancel context.CancelFunc
}

// New creates a scheduler that runs sync tasks through exec.
func New(exec Executor, opts ...Option) *Scheduler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scheduler{
		exec:  exec,
		opts:  o,
		log:   o.Log,
		queue: newTaskQueue(),
	}
}

// Run schedules fn to run once on the next tick.
func (s *Scheduler) Run(fn TaskFunc, opts ...TaskOption) *Task {
	return s.submit(0, 0, fn, opts)
}

// Delay schedules fn to run once after delay ticks.
func (s *Scheduler) Delay(delay Ticks, fn TaskFunc, opts ...TaskOption) *Task {
	return s.submit(delay, 0, fn, opts)
}

// Schedule runs fn after delay ticks and then every period ticks until the
// task is cancelled. A period below one tick is treated as one tick.
func (s *Scheduler) Schedule(delay, period Ticks, fn TaskFunc, opts ...TaskOption) *Task {
	return s.submit(delay, max(period, 1), fn, opts)
}

// Repeat runs fn once for each element of seq, the first time after delay
// ticks and then every period ticks. The task finishes by itself once seq is
// exhausted.
//
//	s.Repeat(scheduler.Range(10, 1, -1), 0, scheduler.TicksPerSecond, func(t *scheduler.Task, i int) {
//	    chat.Global.Writef("Starting in %d...", i)
//	})
func (s *Scheduler) Repeat(seq iter.Seq[int], delay, period Ticks, fn func(t *Task, i int), opts ...TaskOption) *Task {
	next, stop := iter.Pull(seq)

	// Async runs may overlap; the iterator must not be used concurrently.
	var mu sync.Mutex
	release := func(t *Task) {
		t.release = func() {
			mu.Lock()
			stop()
			mu.Unlock()
		}
	}
	return s.submit(delay, max(period, 1), func(t *Task) {
		mu.Lock()
		v, ok := next()
		mu.Unlock()
		if !ok {
			t.Cancel()
			return
		}
		fn(t, v)
	}, append(slices.Clip(opts), release))
}

// submit creates a task and queues it.
func (s *Scheduler) submit(delay, period Ticks, fn TaskFunc, opts []TaskOption) *Task {
	t := &Task{
		id:     uuid.New(),
		fn:     fn,
		period: period,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}

	s.mu.Lock()
	s.seq++
	t.seq = s.seq
	t.due = s.tick + int64(max(delay, 1))
	s.queue.push(t)
	s.mu.Unlock()

	return t
}

// Tick advances the clock by one tick and starts every task that is due.
// Repeating tasks are requeued before they run, so a task that cancels itself
// does not run again.
func (s *Scheduler) Tick() {
	s.mu.Lock()
	s.tick++
	now := s.tick
	due := s.queue.popDue(now)
	for _, t := range due {
		if t.period > 0 {
			s.seq++
			t.seq = s.seq
			t.due = now + int64(t.period)
			s.queue.push(t)
		}
	}
	s.mu.Unlock()

	for _, t := range due {
		s.execute(t)
	}
}

// CurrentTick returns the number of ticks elapsed.
func (s *Scheduler) CurrentTick() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tick
}

// Pending returns the number of queued tasks. Cancelled tasks may still be
// counted until they are dropped from the queue.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.len()
}

// CancelAll cancels every queued task.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	tasks := s.queue.clear()
	s.mu.Unlock()

	for _, t := range tasks {
		t.Cancel()
	}
}

// Start runs the tick loop and the async worker pool until ctx is cancelled
// or Stop is called. It blocks and returns nil after a graceful stop.
func (s *Scheduler) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan func(), s.opts.Workers*4)

	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return ErrRunning
	}
	s.cancel = cancel
	s.jobs = jobs
	s.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	for range s.opts.Workers {
		g.Go(func() error {
			for fn := range jobs {
				fn()
			}
			return nil
		})
	}

	g.Go(func() error {
		defer func() {
			s.mu.Lock()
			s.jobs = nil
			s.cancel = nil
			s.mu.Unlock()
			close(jobs)
		}()

		ticker := time.NewTicker(s.opts.TickRate)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				s.Tick()
			}
		}
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}
	return nil
}

// Stop stops a running scheduler. Queued tasks stay queued.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// execute runs a due task sync or async.
func (s *Scheduler) execute(t *Task) {
	if t.async {
		s.async(func() { s.run(t, nil) })
		return
	}
	s.exec.Exec(func(tx *world.Tx) {
		s.run(t, tx)
	})
}

// async hands fn to the worker pool. Without a running pool, or when the
// pool is saturated, fn gets its own goroutine.
func (s *Scheduler) async(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.jobs != nil {
		select {
		case s.jobs <- fn:
			return
		default:
		}
	}
	go fn()
}

// run executes the task body with panic recovery. A task that panics is
// cancelled. Runs of an async task may overlap, so only sync runs touch
// t.tx.
func (s *Scheduler) run(t *Task, tx *world.Tx) {
	if t.cancelled.Load() {
		return
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("scheduler: task panicked",
					"task", t.id,
					"panic", r,
					"stack", string(debug.Stack()))
				t.cancelled.Store(true)
			}
		}()
		if !t.async {
			t.tx = tx
			defer func() { t.tx = nil }()
		}
		t.fn(t)
	}()
	t.runs.Add(1)

	if t.period == 0 || t.cancelled.Load() {
		t.finish()
	}
}
