package dfx

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oriumgames/dfx/chat"
	"github.com/oriumgames/dfx/scheduler"
)

// Roster lists the players online. *server.Server implements it.
type Roster interface {
	Players(tx *world.Tx) iter.Seq[*player.Player]
}

// Host carries the server-wide services the helpers of this module need.
// Create one with a Builder and pass it to the code that needs it.
type Host struct {
	roster    Roster
	broadcast io.Writer
	sched     *scheduler.Scheduler
	log       *slog.Logger
}

// OnlinePlayers returns the players online. Without a roster it yields
// nothing.
func (h *Host) OnlinePlayers(tx *world.Tx) iter.Seq[*player.Player] {
	if h.roster == nil {
		return func(func(*player.Player) bool) {}
	}
	return h.roster.Players(tx)
}

// Broadcast sends msg to every player through the broadcast writer.
func (h *Host) Broadcast(msg string) error {
	if h.broadcast == nil {
		return fmt.Errorf("dfx: broadcast: %w", ErrNoBroadcaster)
	}
	if _, err := io.WriteString(h.broadcast, msg); err != nil {
		return fmt.Errorf("dfx: broadcast: %w", err)
	}
	return nil
}

// BroadcastComponents sends formatted components to every player.
func (h *Host) BroadcastComponents(components ...*chat.Component) error {
	if h.broadcast == nil {
		return fmt.Errorf("dfx: broadcast: %w", ErrNoBroadcaster)
	}
	return chat.Broadcast(h.broadcast, components...)
}

// Scheduler returns the task scheduler of the host.
func (h *Host) Scheduler() *scheduler.Scheduler {
	return h.sched
}

// Logger returns the logger of the host.
func (h *Host) Logger() *slog.Logger {
	return h.log
}

// Start runs the scheduler until ctx is cancelled or Stop is called.
func (h *Host) Start(ctx context.Context) error {
	h.log.Info("dfx: host started")
	defer h.log.Info("dfx: host stopped")
	return h.sched.Start(ctx)
}

// Stop stops the scheduler and cancels every pending task.
func (h *Host) Stop() {
	h.sched.Stop()
	h.sched.CancelAll()
}

// ShowToAll shows target to every online player.
func (h *Host) ShowToAll(tx *world.Tx, target world.Entity) {
	h.ShowIf(tx, target, nil)
}

// HideFromAll hides target from every online player.
func (h *Host) HideFromAll(tx *world.Tx, target world.Entity) {
	h.HideIf(tx, target, nil)
}

// ShowIf shows target to the online players matching pred. A nil pred
// matches every player.
func (h *Host) ShowIf(tx *world.Tx, target world.Entity, pred func(p *player.Player) bool) {
	for p := range h.OnlinePlayers(tx) {
		if pred == nil || pred(p) {
			p.ShowEntity(target)
		}
	}
}

// HideIf hides target from the online players matching pred. A nil pred
// matches every player.
func (h *Host) HideIf(tx *world.Tx, target world.Entity, pred func(p *player.Player) bool) {
	for p := range h.OnlinePlayers(tx) {
		if pred == nil || pred(p) {
			p.HideEntity(target)
		}
	}
}
