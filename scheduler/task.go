package scheduler

import (
	"sync"
	"sync/atomic"

	"github.com/df-mc/dragonfly/server/world"
	"github.com/google/uuid"
)

// TaskFunc is the body of a task. It receives the task itself so it can
// cancel further runs or read the current transaction.
type TaskFunc func(t *Task)

// Task is a scheduled unit of work. One-shot tasks run once; timers run
// every period ticks until cancelled.
type Task struct {
	id     uuid.UUID
	fn     TaskFunc
	async  bool
	period Ticks

	// due is the tick the task runs at next, seq breaks ties
	due   int64
	seq   uint64
	index int

	// tx is set while a sync task runs
	tx *world.Tx

	runs      atomic.Int64
	cancelled atomic.Bool
	done      chan struct{}
	doneOnce  sync.Once

	// release is called once when the task finishes
	release func()
}

// ID returns the unique identifier of the task.
func (t *Task) ID() uuid.UUID {
	return t.id
}

// Async reports whether the task runs off the world goroutine.
func (t *Task) Async() bool {
	return t.async
}

// Repeating reports whether the task is a timer.
func (t *Task) Repeating() bool {
	return t.period > 0
}

// Tx returns the world transaction of a running sync task. It is nil for
// async tasks and outside of the task body.
func (t *Task) Tx() *world.Tx {
	return t.tx
}

// Runs returns how many times the task body has run.
func (t *Task) Runs() int {
	return int(t.runs.Load())
}

// Cancel prevents any further run of the task. A run already in progress
// completes.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled.Store(true)
	t.finish()
}

// Cancelled reports whether the task was cancelled.
func (t *Task) Cancelled() bool {
	return t.cancelled.Load()
}

// Done is closed once the task will not run again: after a one-shot task
// ran, or after Cancel.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// finish closes the done channel and releases resources held by the task.
func (t *Task) finish() {
	t.doneOnce.Do(func() {
		if t.release != nil {
			t.release()
		}
		close(t.done)
	})
}
