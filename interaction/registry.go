package interaction

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"slices"
)

// ErrExtraction wraps errors returned by an Extractor. When extraction fails
// no action runs for the event.
var ErrExtraction = errors.New("interaction: subject extraction failed")

// Extractor determines which subjects an event concerns.
// The returned order is the order in which subjects are dispatched.
type Extractor[S comparable, E any] interface {
	SubjectsOf(event E) ([]S, error)
}

// ExtractorFunc adapts a plain function to the Extractor interface.
type ExtractorFunc[S comparable, E any] func(event E) ([]S, error)

// SubjectsOf calls f(event).
func (f ExtractorFunc[S, E]) SubjectsOf(event E) ([]S, error) {
	return f(event)
}

// ActionError is returned from Dispatch when an action panicked.
// The remaining actions still ran.
type ActionError struct {
	Subject   any
	Recovered any
	Stack     []byte
}

// Error implements error.
func (e *ActionError) Error() string {
	return fmt.Sprintf("interaction: action for subject %v panicked: %v", e.Subject, e.Recovered)
}

// Registry maps subjects to the actions subscribed to them and re-dispatches
// events to the actions of every subject an event concerns.
//
// Each call to Subscribe adds one registration, even when the same action is
// subscribed twice for the same subject. A subject without actions is never
// kept in the registry.
//
// Concurrency:
// A Registry is not safe for concurrent use. Dragonfly calls player handlers
// on the goroutine of the player's world, so subscribing from handlers and
// dispatching from handlers is fine. Mutating a registry from several
// goroutines needs external locking.
type Registry[S comparable, E any] struct {
	extractor Extractor[S, E]
	subs      map[S][]*Subscription[S, E]
	log       *slog.Logger
}

// New creates a registry that uses extractor to find the subjects of an event.
func New[S comparable, E any](extractor Extractor[S, E], opts ...Option) *Registry[S, E] {
	o := newOptions(opts)
	return &Registry[S, E]{
		extractor: extractor,
		subs:      make(map[S][]*Subscription[S, E]),
		log:       o.log,
	}
}

// Subscription is a single (subject, action) registration.
// Close it to stop receiving events.
type Subscription[S comparable, E any] struct {
	subject  S
	action   func(E)
	registry *Registry[S, E]
	closed   bool
}

// Subject returns the subject the action was subscribed to.
func (s *Subscription[S, E]) Subject() S {
	return s.subject
}

// Closed reports whether the subscription was removed.
func (s *Subscription[S, E]) Closed() bool {
	return s == nil || s.closed
}

// Close removes the subscription from its registry. It is safe to call more
// than once and on a nil subscription.
func (s *Subscription[S, E]) Close() {
	if s == nil || s.closed {
		return
	}
	s.registry.Unsubscribe(s.subject, s)
}

// Subscribe registers action to run whenever a dispatched event concerns subject.
func (r *Registry[S, E]) Subscribe(subject S, action func(E)) *Subscription[S, E] {
	sub := &Subscription[S, E]{
		subject:  subject,
		action:   action,
		registry: r,
	}
	r.subs[subject] = append(r.subs[subject], sub)
	return sub
}

// Unsubscribe removes sub if it is registered for subject.
// It does nothing otherwise.
func (r *Registry[S, E]) Unsubscribe(subject S, sub *Subscription[S, E]) {
	if sub == nil {
		return
	}
	subs := r.subs[subject]
	i := slices.Index(subs, sub)
	if i < 0 {
		return
	}
	sub.closed = true

	subs = slices.Delete(subs, i, i+1)
	if len(subs) == 0 {
		delete(r.subs, subject)
		return
	}
	r.subs[subject] = subs
}

// UnsubscribeAll removes every action registered for subject.
func (r *Registry[S, E]) UnsubscribeAll(subject S) {
	for _, sub := range r.subs[subject] {
		sub.closed = true
	}
	delete(r.subs, subject)
}

// Len returns the number of subjects with at least one action.
func (r *Registry[S, E]) Len() int {
	return len(r.subs)
}

// Actions returns the number of actions registered for subject.
func (r *Registry[S, E]) Actions(subject S) int {
	return len(r.subs[subject])
}

// Subjects returns every subject that has at least one action, in no
// particular order.
func (r *Registry[S, E]) Subjects() []S {
	out := make([]S, 0, len(r.subs))
	for s := range r.subs {
		out = append(out, s)
	}
	return out
}

// Dispatch runs the actions of every subject event concerns.
//
// Subjects are visited in the order returned by the extractor and actions in
// the order they were subscribed. A panicking action is recovered and logged,
// and the remaining actions still run; the failures are returned joined as
// *ActionError values. If extraction fails, no action runs and the returned
// error wraps ErrExtraction.
func (r *Registry[S, E]) Dispatch(event E) error {
	subjects, err := r.extract(event)
	if err != nil {
		return err
	}

	var errs []error
	for _, subject := range subjects {
		subs := r.subs[subject]
		if len(subs) == 0 {
			continue
		}
		// Actions may subscribe or unsubscribe while we iterate.
		for _, sub := range slices.Clone(subs) {
			if sub.closed {
				continue
			}
			if err := r.run(sub, event); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// extract calls the extractor, converting panics into errors.
func (r *Registry[S, E]) extract(event E) (subjects []S, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%w: panic: %v", ErrExtraction, v)
		}
	}()

	subjects, err = r.extractor.SubjectsOf(event)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtraction, err)
	}
	return subjects, nil
}

// run executes a single action with panic recovery.
func (r *Registry[S, E]) run(sub *Subscription[S, E], event E) (err error) {
	defer func() {
		if v := recover(); v != nil {
			r.log.Error("interaction: action panicked",
				"subject", sub.subject,
				"panic", v)
			err = &ActionError{
				Subject:   sub.subject,
				Recovered: v,
				Stack:     debug.Stack(),
			}
		}
	}()

	sub.action(event)
	return nil
}
