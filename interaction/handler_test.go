package interaction

import (
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/event"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/player/skin"
	"github.com/df-mc/dragonfly/server/session"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

type fakeEntity struct {
	world.Entity
	handle *world.EntityHandle
}

func (f fakeEntity) H() *world.EntityHandle { return f.handle }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCtx() *player.Context {
	return event.C[*player.Player](nil)
}

func TestHandler_BlockListener(t *testing.T) {
	chests := NewBlockListener(WithLogger(quietLogger()))
	h := NewHandler([]Listener{chests}, WithLogger(quietLogger()))

	chestPos := cube.Pos{10, 64, -3}
	opened := 0
	chests.Subscribe(At(nil, chestPos), On(func(e *EventItemUseOnBlock) {
		opened++
		e.Cancel()
	}))

	ctx := newCtx()
	h.HandleItemUseOnBlock(ctx, chestPos, cube.FaceUp, mgl64.Vec3{0.5, 1, 0.5})
	require.Equal(t, 1, opened)
	require.True(t, ctx.Cancelled())

	// Another block, and a block event of a different type.
	h.HandleItemUseOnBlock(newCtx(), cube.Pos{0, 0, 0}, cube.FaceUp, mgl64.Vec3{})
	h.HandleStartBreak(newCtx(), chestPos)
	require.Equal(t, 1, opened)

	// Events without a block are ignored.
	h.HandlePunchAir(newCtx())
	require.Equal(t, 1, opened)
}

func TestHandler_EntityListener(t *testing.T) {
	npcs := NewEntityListener(WithLogger(quietLogger()))
	h := NewHandler([]Listener{npcs}, WithLogger(quietLogger()))

	npc := fakeEntity{handle: &world.EntityHandle{}}
	other := fakeEntity{handle: &world.EntityHandle{}}

	var hits []Event
	sub := npcs.SubscribeEntity(npc, func(e Event) { hits = append(hits, e) })

	force, height, critical := 0.4, 0.4, false
	h.HandleAttackEntity(newCtx(), npc, &force, &height, &critical)
	h.HandleItemUseOnEntity(newCtx(), npc)
	h.HandleAttackEntity(newCtx(), other, &force, &height, &critical)
	require.Len(t, hits, 2)

	attack, ok := hits[0].(*EventAttackEntity)
	require.True(t, ok)
	require.Equal(t, npc, attack.Target())

	sub.Close()
	h.HandleItemUseOnEntity(newCtx(), npc)
	require.Len(t, hits, 2)
	require.Nil(t, npcs.SubscribeEntity(nil, func(Event) {}))
}

func TestHandler_PlayerListenerWithoutPlayer(t *testing.T) {
	players := NewPlayerListener()
	h := NewHandler([]Listener{players}, WithLogger(quietLogger()))

	msg := "hello"
	h.HandleChat(newCtx(), &msg)
	h.HandleQuit(nil)
	require.Zero(t, players.Len())
}

func TestHandler_FailingListenerDoesNotStopOthers(t *testing.T) {
	var order []string
	failing := ListenerFunc(func(Event) error {
		order = append(order, "failing")
		return errors.New("listener failed")
	})
	ok := ListenerFunc(func(Event) error {
		order = append(order, "ok")
		return nil
	})

	h := NewHandler([]Listener{failing, ok}, WithLogger(quietLogger()))
	h.HandleJump(nil)
	require.Equal(t, []string{"failing", "ok"}, order)
}

func TestOn_FiltersByType(t *testing.T) {
	calls := 0
	action := On(func(*EventChat) { calls++ })

	action(&EventChat{Ctx: newCtx()})
	action(&EventJump{})
	require.Equal(t, 1, calls)
}

func TestEvent_Player(t *testing.T) {
	require.Nil(t, (&EventItemUse{}).Player())
	require.Nil(t, (&EventItemUse{Ctx: newCtx()}).Player())
	require.Nil(t, (&EventQuit{}).Player())
}

func TestHandler_ForwardsEveryPlayerEvent(t *testing.T) {
	var got []Event
	h := NewHandler([]Listener{ListenerFunc(func(e Event) error {
		got = append(got, e)
		return nil
	})}, WithLogger(quietLogger()))

	food, xp, dmg := 18, 5, 1
	health := 2.0
	pos := mgl64.Vec3{}
	var w *world.World
	var sk skin.Skin

	h.HandleChangeWorld(nil, nil, nil)
	h.HandleFoodLoss(newCtx(), 20, &food)
	h.HandleHeal(newCtx(), &health, nil)
	h.HandleRespawn(nil, &pos, &w)
	h.HandleSkinChange(newCtx(), &sk)
	h.HandleItemRelease(newCtx(), item.Stack{}, time.Second)
	h.HandleExperienceGain(newCtx(), &xp)
	h.HandleItemDamage(newCtx(), item.Stack{}, &dmg)
	h.HandleTransfer(newCtx(), &net.UDPAddr{})
	h.HandleDiagnostics(nil, session.Diagnostics{})

	require.Len(t, got, 10)
	require.IsType(t, &EventChangeWorld{}, got[0])
	require.IsType(t, &EventFoodLoss{}, got[1])
	require.IsType(t, &EventHeal{}, got[2])
	require.IsType(t, &EventRespawn{}, got[3])
	require.IsType(t, &EventSkinChange{}, got[4])
	require.IsType(t, &EventItemRelease{}, got[5])
	require.IsType(t, &EventExperienceGain{}, got[6])
	require.IsType(t, &EventItemDamage{}, got[7])
	require.IsType(t, &EventTransfer{}, got[8])
	require.IsType(t, &EventDiagnostics{}, got[9])

	for _, e := range got {
		require.Nil(t, e.Player())
		if c, ok := e.(Cancellable); ok {
			c.Cancel()
		}
	}
	require.True(t, got[1].(*EventFoodLoss).Ctx.Cancelled())
	require.Equal(t, 18, *got[1].(*EventFoodLoss).To)
}
