package interaction

import (
	"weak"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/google/uuid"
)

// On wraps a typed action so it only runs for events of type T.
//
//	chests.Subscribe(key, interaction.On(func(e *interaction.EventItemUseOnBlock) {
//	    e.Cancel()
//	}))
func On[T Event](action func(T)) func(Event) {
	return func(e Event) {
		if t, ok := e.(T); ok {
			action(t)
		}
	}
}

// BlockKey identifies a block in a specific world.
type BlockKey struct {
	World *world.World
	Pos   cube.Pos
}

// At returns the BlockKey of pos in w.
func At(w *world.World, pos cube.Pos) BlockKey {
	return BlockKey{World: w, Pos: pos}
}

// BlockListener dispatches block-targeting events (using an item on a block,
// breaking, placing, picking, sign edits, lectern pages, extinguishing fire)
// to the actions subscribed to that block.
type BlockListener struct {
	*Registry[BlockKey, Event]
}

// NewBlockListener creates an empty BlockListener.
func NewBlockListener(opts ...Option) *BlockListener {
	return &BlockListener{
		Registry: New[BlockKey, Event](ExtractorFunc[BlockKey, Event](blockSubjects), opts...),
	}
}

// HandleEvent implements Listener.
func (l *BlockListener) HandleEvent(e Event) error {
	return l.Dispatch(e)
}

func blockSubjects(e Event) ([]BlockKey, error) {
	be, ok := e.(BlockEvent)
	if !ok {
		return nil, nil
	}
	return []BlockKey{At(worldOf(e.Player()), be.BlockPos())}, nil
}

func worldOf(p *player.Player) *world.World {
	if p == nil {
		return nil
	}
	return p.Tx().World()
}

// PlayerListener dispatches every event to the actions subscribed to the
// UUID of the player it originated from. All subscriptions of a player are
// dropped once the player quits.
type PlayerListener struct {
	*Registry[uuid.UUID, Event]
}

// NewPlayerListener creates an empty PlayerListener.
func NewPlayerListener(opts ...Option) *PlayerListener {
	return &PlayerListener{
		Registry: New[uuid.UUID, Event](ExtractorFunc[uuid.UUID, Event](playerSubjects), opts...),
	}
}

// HandleEvent implements Listener.
func (l *PlayerListener) HandleEvent(e Event) error {
	err := l.Dispatch(e)
	if q, ok := e.(*EventQuit); ok && q.P != nil {
		l.UnsubscribeAll(q.P.UUID())
	}
	return err
}

func playerSubjects(e Event) ([]uuid.UUID, error) {
	p := e.Player()
	if p == nil {
		return nil, nil
	}
	return []uuid.UUID{p.UUID()}, nil
}

// EntityListener dispatches entity-targeting events (attacks and item use on
// an entity) to the actions subscribed to the targeted entity. Entities are
// keyed by their handle, which is held weakly: once an entity handle is gone,
// its subscriptions go with it.
type EntityListener struct {
	*WeakRegistry[world.EntityHandle, Event]
}

// NewEntityListener creates an empty EntityListener.
func NewEntityListener(opts ...Option) *EntityListener {
	return &EntityListener{
		WeakRegistry: NewWeak[world.EntityHandle, Event](ExtractorFunc[*world.EntityHandle, Event](entitySubjects), opts...),
	}
}

// SubscribeEntity subscribes action to the handle of e.
func (l *EntityListener) SubscribeEntity(e world.Entity, action func(Event)) *Subscription[weak.Pointer[world.EntityHandle], Event] {
	if e == nil {
		return nil
	}
	return l.Subscribe(e.H(), action)
}

// HandleEvent implements Listener.
func (l *EntityListener) HandleEvent(e Event) error {
	return l.Dispatch(e)
}

func entitySubjects(e Event) ([]*world.EntityHandle, error) {
	ee, ok := e.(EntityEvent)
	if !ok || ee.Target() == nil {
		return nil, nil
	}
	return []*world.EntityHandle{ee.Target().H()}, nil
}
