package interaction

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

type testEvent struct {
	subjects []string
}

func newTestRegistry() *Registry[string, *testEvent] {
	return New[string, *testEvent](ExtractorFunc[string, *testEvent](func(e *testEvent) ([]string, error) {
		return e.subjects, nil
	}), WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

type recorder struct {
	calls []*testEvent
}

func (r *recorder) record(e *testEvent) {
	r.calls = append(r.calls, e)
}

func TestRegistry_DispatchAndUnsubscribe(t *testing.T) {
	reg := newTestRegistry()
	rec := &recorder{}

	sub := reg.Subscribe("chestA", rec.record)
	e := &testEvent{subjects: []string{"chestA"}}

	require.NoError(t, reg.Dispatch(e))
	require.Len(t, rec.calls, 1)
	require.Same(t, e, rec.calls[0])

	reg.Unsubscribe("chestA", sub)
	require.NoError(t, reg.Dispatch(e))
	require.Len(t, rec.calls, 1)
	require.True(t, sub.Closed())
	require.Zero(t, reg.Len())
}

func TestRegistry_UnsubscribeAll(t *testing.T) {
	reg := newTestRegistry()
	rec := &recorder{}

	reg.Subscribe("chestA", rec.record)
	reg.Subscribe("chestA", rec.record)
	reg.UnsubscribeAll("chestA")

	require.NoError(t, reg.Dispatch(&testEvent{subjects: []string{"chestA"}}))
	require.Empty(t, rec.calls)
	require.Zero(t, reg.Len())
	require.Zero(t, reg.Actions("chestA"))

	// Removing a subject without actions is a no-op.
	reg.UnsubscribeAll("chestB")
}

func TestRegistry_IsolationAcrossSubjects(t *testing.T) {
	reg := newTestRegistry()
	a, b := &recorder{}, &recorder{}

	reg.Subscribe("A", a.record)
	reg.Subscribe("B", b.record)

	require.NoError(t, reg.Dispatch(&testEvent{subjects: []string{"B"}}))
	require.Empty(t, a.calls)
	require.Len(t, b.calls, 1)
}

func TestRegistry_Multiplicity(t *testing.T) {
	reg := newTestRegistry()
	var order []string

	reg.Subscribe("A", func(*testEvent) { order = append(order, "first") })
	reg.Subscribe("A", func(*testEvent) { order = append(order, "second") })

	require.NoError(t, reg.Dispatch(&testEvent{subjects: []string{"A"}}))
	require.Equal(t, []string{"first", "second"}, order)
	require.Equal(t, 2, reg.Actions("A"))
}

func TestRegistry_DuplicateSubscriptionsStack(t *testing.T) {
	reg := newTestRegistry()
	rec := &recorder{}

	first := reg.Subscribe("A", rec.record)
	reg.Subscribe("A", rec.record)

	require.NoError(t, reg.Dispatch(&testEvent{subjects: []string{"A"}}))
	require.Len(t, rec.calls, 2)

	first.Close()
	require.NoError(t, reg.Dispatch(&testEvent{subjects: []string{"A"}}))
	require.Len(t, rec.calls, 3)
}

func TestRegistry_IdempotentUnsubscribe(t *testing.T) {
	reg := newTestRegistry()
	rec := &recorder{}

	kept := reg.Subscribe("A", rec.record)
	other := reg.Subscribe("B", rec.record)

	// Wrong subject, nil subscription, double close: all no-ops.
	reg.Unsubscribe("A", other)
	reg.Unsubscribe("A", nil)
	other.Close()
	other.Close()

	var nilSub *Subscription[string, *testEvent]
	nilSub.Close()
	require.True(t, nilSub.Closed())

	require.False(t, kept.Closed())
	require.NoError(t, reg.Dispatch(&testEvent{subjects: []string{"A", "B"}}))
	require.Len(t, rec.calls, 1)
}

func TestRegistry_SkipSubjectWithoutActions(t *testing.T) {
	reg := newTestRegistry()
	require.NoError(t, reg.Dispatch(&testEvent{subjects: []string{"nobody"}}))
	require.NoError(t, reg.Dispatch(&testEvent{}))
}

func TestRegistry_SubjectOrder(t *testing.T) {
	reg := newTestRegistry()
	var order []string

	reg.Subscribe("A", func(*testEvent) { order = append(order, "A") })
	reg.Subscribe("B", func(*testEvent) { order = append(order, "B") })

	require.NoError(t, reg.Dispatch(&testEvent{subjects: []string{"B", "A", "B"}}))
	require.Equal(t, []string{"B", "A", "B"}, order)
}

func TestRegistry_PanickingActionIsIsolated(t *testing.T) {
	reg := newTestRegistry()
	rec := &recorder{}

	reg.Subscribe("A", func(*testEvent) { panic("boom") })
	reg.Subscribe("A", rec.record)
	reg.Subscribe("B", rec.record)

	err := reg.Dispatch(&testEvent{subjects: []string{"A", "B"}})
	require.Error(t, err)
	require.Len(t, rec.calls, 2)

	var actionErr *ActionError
	require.True(t, errors.As(err, &actionErr))
	require.Equal(t, "A", actionErr.Subject)
	require.Equal(t, "boom", actionErr.Recovered)
	require.NotEmpty(t, actionErr.Stack)
}

func TestRegistry_ExtractionFailureAbortsDispatch(t *testing.T) {
	extractErr := errors.New("no subjects today")
	rec := &recorder{}

	reg := New[string, *testEvent](ExtractorFunc[string, *testEvent](func(*testEvent) ([]string, error) {
		return []string{"A"}, extractErr
	}))
	reg.Subscribe("A", rec.record)

	err := reg.Dispatch(&testEvent{})
	require.ErrorIs(t, err, ErrExtraction)
	require.ErrorIs(t, err, extractErr)
	require.Empty(t, rec.calls)
}

func TestRegistry_ExtractionPanic(t *testing.T) {
	reg := New[string, *testEvent](ExtractorFunc[string, *testEvent](func(*testEvent) ([]string, error) {
		panic("bad event")
	}))
	require.ErrorIs(t, reg.Dispatch(&testEvent{}), ErrExtraction)
}

func TestRegistry_UnsubscribeDuringDispatch(t *testing.T) {
	reg := newTestRegistry()
	rec := &recorder{}

	var second *Subscription[string, *testEvent]
	reg.Subscribe("A", func(*testEvent) { second.Close() })
	second = reg.Subscribe("A", rec.record)

	require.NoError(t, reg.Dispatch(&testEvent{subjects: []string{"A"}}))
	require.Empty(t, rec.calls)
	require.Equal(t, 1, reg.Actions("A"))
}

func TestRegistry_Subjects(t *testing.T) {
	reg := newTestRegistry()
	reg.Subscribe("A", func(*testEvent) {})
	reg.Subscribe("B", func(*testEvent) {})

	require.ElementsMatch(t, []string{"A", "B"}, reg.Subjects())
	require.Equal(t, 2, reg.Len())
}
