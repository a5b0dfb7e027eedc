package interaction

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

type chest struct {
	name  string
	slots [27]int
}

type openEvent struct {
	chests []*chest
}

func newChestRegistry() *WeakRegistry[chest, *openEvent] {
	return NewWeak[chest, *openEvent](ExtractorFunc[*chest, *openEvent](func(e *openEvent) ([]*chest, error) {
		return e.chests, nil
	}))
}

// subscribeTemporary subscribes a chest that is unreachable once the
// function returns.
//
//go:noinline
func subscribeTemporary(reg *WeakRegistry[chest, *openEvent], calls *int) {
	c := &chest{name: "temporary"}
	reg.Subscribe(c, func(*openEvent) { *calls++ })
}

func TestWeakRegistry_Dispatch(t *testing.T) {
	reg := newChestRegistry()
	c := &chest{name: "A"}
	calls := 0

	sub := reg.Subscribe(c, func(*openEvent) { calls++ })
	require.NoError(t, reg.Dispatch(&openEvent{chests: []*chest{c, nil}}))
	require.Equal(t, 1, calls)
	require.Equal(t, 1, reg.Actions(c))

	reg.Unsubscribe(c, sub)
	require.NoError(t, reg.Dispatch(&openEvent{chests: []*chest{c}}))
	require.Equal(t, 1, calls)
	require.Zero(t, reg.Len())
}

func TestWeakRegistry_UnsubscribeAll(t *testing.T) {
	reg := newChestRegistry()
	c := &chest{name: "A"}
	calls := 0

	reg.Subscribe(c, func(*openEvent) { calls++ })
	reg.Subscribe(c, func(*openEvent) { calls++ })
	reg.UnsubscribeAll(c)

	require.NoError(t, reg.Dispatch(&openEvent{chests: []*chest{c}}))
	require.Zero(t, calls)
	runtime.KeepAlive(c)
}

func TestWeakRegistry_NilSubject(t *testing.T) {
	reg := newChestRegistry()

	require.Nil(t, reg.Subscribe(nil, func(*openEvent) {}))
	reg.Unsubscribe(nil, nil)
	reg.UnsubscribeAll(nil)
	require.Zero(t, reg.Actions(nil))
	require.Zero(t, reg.Len())
}

func TestWeakRegistry_Reclamation(t *testing.T) {
	reg := newChestRegistry()
	kept := &chest{name: "kept"}
	calls := 0

	reg.Subscribe(kept, func(*openEvent) {})
	subscribeTemporary(reg, &calls)
	require.Equal(t, 2, reg.Len())

	reclaimed := 0
	for i := 0; i < 10 && reclaimed == 0; i++ {
		runtime.GC()
		reclaimed = reg.Sweep()
	}
	require.Equal(t, 1, reclaimed)
	require.Equal(t, 1, reg.Len())
	require.Equal(t, 1, reg.Actions(kept))
	require.Zero(t, calls)

	runtime.KeepAlive(kept)
}
