package scheduler

// taskQueue is a priority queue of tasks ordered by due tick, then by
// submission order. It uses a binary heap for O(log n) insertion and removal.
// Callers must hold the scheduler lock.
type taskQueue struct {
	heap []*Task
}

// newTaskQueue creates a new task queue.
func newTaskQueue() *taskQueue {
	return &taskQueue{heap: make([]*Task, 0, 64)}
}

// compact removes cancelled tasks from the heap and rebuilds the heap property.
func (q *taskQueue) compact() {
	write := 0
	for read := 0; read < len(q.heap); read++ {
		if !q.heap[read].cancelled.Load() {
			q.heap[write] = q.heap[read]
			q.heap[write].index = write
			write++
		}
	}

	for i := write; i < len(q.heap); i++ {
		q.heap[i] = nil
	}
	q.heap = q.heap[:write]

	for i := len(q.heap)/2 - 1; i >= 0; i-- {
		q.down(i, len(q.heap))
	}
}

// push adds a task, compacting periodically so cancelled repeating tasks do
// not pile up.
func (q *taskQueue) push(task *Task) {
	if len(q.heap) > 100 && len(q.heap)%100 == 0 {
		q.compact()
	}

	task.index = len(q.heap)
	q.heap = append(q.heap, task)
	q.up(task.index)
}

// popDue removes and returns every non-cancelled task due at or before tick.
func (q *taskQueue) popDue(tick int64) []*Task {
	var due []*Task
	for len(q.heap) > 0 && q.heap[0].due <= tick {
		task := q.pop()
		if !task.cancelled.Load() {
			due = append(due, task)
		}
	}
	return due
}

// len returns the number of queued tasks, including cancelled ones that
// have not been dropped yet.
func (q *taskQueue) len() int {
	return len(q.heap)
}

// clear removes every task and returns them.
func (q *taskQueue) clear() []*Task {
	tasks := q.heap
	q.heap = make([]*Task, 0, 64)
	return tasks
}

// pop removes and returns the first task.
func (q *taskQueue) pop() *Task {
	n := len(q.heap) - 1
	q.swap(0, n)
	q.down(0, n)
	task := q.heap[n]
	q.heap[n] = nil
	q.heap = q.heap[:n]
	task.index = -1
	return task
}

func (q *taskQueue) less(i, j int) bool {
	a, b := q.heap[i], q.heap[j]
	if a.due != b.due {
		return a.due < b.due
	}
	return a.seq < b.seq
}

// up moves task at index up the heap.
func (q *taskQueue) up(i int) {
	for {
		parent := (i - 1) / 2
		if parent == i || !q.less(i, parent) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

// down moves task at index down the heap.
func (q *taskQueue) down(i, n int) {
	for {
		left := 2*i + 1
		if left >= n || left < 0 {
			break
		}
		j := left
		if right := left + 1; right < n && q.less(right, left) {
			j = right
		}
		if !q.less(j, i) {
			break
		}
		q.swap(i, j)
		i = j
	}
}

// swap swaps two tasks in the heap.
func (q *taskQueue) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.heap[i].index = i
	q.heap[j].index = j
}
