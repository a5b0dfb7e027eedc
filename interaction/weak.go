package interaction

import (
	"runtime"
	"sync/atomic"
	"weak"
)

// WeakRegistry is a Registry whose subjects are pointers held weakly.
//
// The registry does not keep a subject alive. Once nothing else references
// it, its entry and all of its actions may be dropped at any time without
// running. Reclamation is best effort: a cleanup registered with the runtime
// marks the registry dirty when a subject is collected, and the next
// Subscribe or Dispatch (or an explicit Sweep) removes the dead entries.
//
// Actions that capture their own subject keep it reachable, so such entries
// are only ever removed through Unsubscribe.
//
// WeakRegistry has the same concurrency rules as Registry.
type WeakRegistry[T any, E any] struct {
	reg   *Registry[weak.Pointer[T], E]
	dirty atomic.Bool
}

// NewWeak creates a weakly keyed registry. Nil subjects returned by
// extractor are skipped.
func NewWeak[T any, E any](extractor Extractor[*T, E], opts ...Option) *WeakRegistry[T, E] {
	w := &WeakRegistry[T, E]{}
	w.reg = New[weak.Pointer[T], E](ExtractorFunc[weak.Pointer[T], E](func(event E) ([]weak.Pointer[T], error) {
		subjects, err := extractor.SubjectsOf(event)
		if err != nil {
			return nil, err
		}
		keys := make([]weak.Pointer[T], 0, len(subjects))
		for _, s := range subjects {
			if s != nil {
				keys = append(keys, weak.Make(s))
			}
		}
		return keys, nil
	}), opts...)
	return w
}

// Subscribe registers action for subject. A nil subject is ignored and
// returns a nil subscription.
func (w *WeakRegistry[T, E]) Subscribe(subject *T, action func(E)) *Subscription[weak.Pointer[T], E] {
	if subject == nil {
		return nil
	}
	w.reclaim()

	key := weak.Make(subject)
	if w.reg.Actions(key) == 0 {
		runtime.AddCleanup(subject, func(w *WeakRegistry[T, E]) {
			w.dirty.Store(true)
		}, w)
	}
	return w.reg.Subscribe(key, action)
}

// Unsubscribe removes sub if it is registered for subject.
func (w *WeakRegistry[T, E]) Unsubscribe(subject *T, sub *Subscription[weak.Pointer[T], E]) {
	if subject == nil {
		return
	}
	w.reg.Unsubscribe(weak.Make(subject), sub)
}

// UnsubscribeAll removes every action registered for subject.
func (w *WeakRegistry[T, E]) UnsubscribeAll(subject *T) {
	if subject == nil {
		return
	}
	w.reg.UnsubscribeAll(weak.Make(subject))
}

// Actions returns the number of actions registered for subject.
func (w *WeakRegistry[T, E]) Actions(subject *T) int {
	if subject == nil {
		return 0
	}
	return w.reg.Actions(weak.Make(subject))
}

// Len returns the number of tracked subjects. Entries of collected subjects
// count until the next reclamation pass.
func (w *WeakRegistry[T, E]) Len() int {
	return w.reg.Len()
}

// Dispatch reclaims dead entries if any subject was collected and then
// dispatches event like Registry.Dispatch.
func (w *WeakRegistry[T, E]) Dispatch(event E) error {
	w.reclaim()
	return w.reg.Dispatch(event)
}

// Sweep removes the entries of every subject that has been collected and
// returns how many were removed.
func (w *WeakRegistry[T, E]) Sweep() int {
	w.dirty.Store(false)

	n := 0
	for _, key := range w.reg.Subjects() {
		if key.Value() == nil {
			w.reg.UnsubscribeAll(key)
			n++
		}
	}
	return n
}

// reclaim sweeps only if the runtime reported a collected subject.
func (w *WeakRegistry[T, E]) reclaim() {
	if w.dirty.Load() {
		w.Sweep()
	}
}
