package interaction

import (
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/cmd"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/player"
	"github.com/df-mc/dragonfly/server/player/skin"
	"github.com/df-mc/dragonfly/server/session"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// Listener receives every event the Handler dispatches.
// BlockListener, PlayerListener and EntityListener implement it.
type Listener interface {
	HandleEvent(e Event) error
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(e Event) error

// HandleEvent calls f(e).
func (f ListenerFunc) HandleEvent(e Event) error {
	return f(e)
}

// Handler implements player.Handler and forwards the player's events to a
// fixed set of listeners.
//
// A single Handler may be shared by all players:
//
//	h := interaction.NewHandler([]interaction.Listener{chests, npcs})
//	for p := range srv.Accept() {
//	    p.Handle(h)
//	}
//
// Concurrency:
// Dragonfly calls handler methods synchronously on the goroutine of the
// player's world. Listeners run on that goroutine, in the order passed to
// NewHandler.
type Handler struct {
	player.NopHandler
	listeners []Listener
	log       *slog.Logger
}

// NewHandler creates a handler dispatching to listeners.
func NewHandler(listeners []Listener, opts ...Option) *Handler {
	o := newOptions(opts)
	return &Handler{
		listeners: listeners,
		log:       o.log,
	}
}

// Compile-time check that Handler implements player.Handler.
var _ player.Handler = (*Handler)(nil)

// Dispatch forwards e to every listener. Failed listeners are logged and do
// not stop the others.
func (h *Handler) Dispatch(e Event) {
	for _, l := range h.listeners {
		if err := l.HandleEvent(e); err != nil {
			h.log.Warn("interaction: listener failed",
				"event", fmt.Sprintf("%T", e),
				"error", err)
		}
	}
}

// HandleMove handles the player moving.
func (h *Handler) HandleMove(ctx *player.Context, newPos mgl64.Vec3, newRot cube.Rotation) {
	h.Dispatch(&EventMove{Ctx: ctx, Position: newPos, Rotation: newRot})
}

// HandleJump handles the player jumping.
func (h *Handler) HandleJump(p *player.Player) {
	h.Dispatch(&EventJump{P: p})
}

// HandleTeleport handles the player being teleported.
func (h *Handler) HandleTeleport(ctx *player.Context, pos mgl64.Vec3) {
	h.Dispatch(&EventTeleport{Ctx: ctx, Position: pos})
}

// HandleToggleSprint handles the player toggling sprint.
func (h *Handler) HandleToggleSprint(ctx *player.Context, after bool) {
	h.Dispatch(&EventToggleSprint{Ctx: ctx, After: after})
}

// HandleToggleSneak handles the player toggling sneak.
func (h *Handler) HandleToggleSneak(ctx *player.Context, after bool) {
	h.Dispatch(&EventToggleSneak{Ctx: ctx, After: after})
}

// HandleChat handles the player sending a chat message.
func (h *Handler) HandleChat(ctx *player.Context, message *string) {
	h.Dispatch(&EventChat{Ctx: ctx, Message: message})
}

// HandleHurt handles the player being hurt.
func (h *Handler) HandleHurt(ctx *player.Context, damage *float64, immune bool, attackImmunity *time.Duration, src world.DamageSource) {
	h.Dispatch(&EventHurt{Ctx: ctx, Damage: damage, Immune: immune, Immunity: attackImmunity, Source: src})
}

// HandleDeath handles the player dying.
func (h *Handler) HandleDeath(p *player.Player, src world.DamageSource, keepInv *bool) {
	h.Dispatch(&EventDeath{P: p, Source: src, KeepInventory: keepInv})
}

// HandleFireExtinguish handles the player extinguishing fire.
func (h *Handler) HandleFireExtinguish(ctx *player.Context, pos cube.Pos) {
	h.Dispatch(&EventFireExtinguish{Ctx: ctx, Position: pos})
}

// HandleStartBreak handles the player starting to break a block.
func (h *Handler) HandleStartBreak(ctx *player.Context, pos cube.Pos) {
	h.Dispatch(&EventStartBreak{Ctx: ctx, Position: pos})
}

// HandleBlockBreak handles block breaking.
func (h *Handler) HandleBlockBreak(ctx *player.Context, pos cube.Pos, drops *[]item.Stack, xp *int) {
	h.Dispatch(&EventBlockBreak{Ctx: ctx, Position: pos, Drops: drops, Experience: xp})
}

// HandleBlockPlace handles block placement.
func (h *Handler) HandleBlockPlace(ctx *player.Context, pos cube.Pos, b world.Block) {
	h.Dispatch(&EventBlockPlace{Ctx: ctx, Position: pos, Block: b})
}

// HandleBlockPick handles picking a block.
func (h *Handler) HandleBlockPick(ctx *player.Context, pos cube.Pos, b world.Block) {
	h.Dispatch(&EventBlockPick{Ctx: ctx, Position: pos, Block: b})
}

// HandleItemUse handles general item use.
func (h *Handler) HandleItemUse(ctx *player.Context) {
	h.Dispatch(&EventItemUse{Ctx: ctx})
}

// HandleItemUseOnBlock handles using an item on a block.
func (h *Handler) HandleItemUseOnBlock(ctx *player.Context, pos cube.Pos, face cube.Face, clickPos mgl64.Vec3) {
	h.Dispatch(&EventItemUseOnBlock{Ctx: ctx, Position: pos, Face: face, ClickPos: clickPos})
}

// HandleItemUseOnEntity handles using an item on an entity.
func (h *Handler) HandleItemUseOnEntity(ctx *player.Context, e world.Entity) {
	h.Dispatch(&EventItemUseOnEntity{Ctx: ctx, Entity: e})
}

// HandleItemConsume handles consuming an item.
func (h *Handler) HandleItemConsume(ctx *player.Context, it item.Stack) {
	h.Dispatch(&EventItemConsume{Ctx: ctx, Item: it})
}

// HandleAttackEntity handles attacking an entity.
func (h *Handler) HandleAttackEntity(ctx *player.Context, e world.Entity, force, height *float64, critical *bool) {
	h.Dispatch(&EventAttackEntity{Ctx: ctx, Entity: e, Force: force, Height: height, Critical: critical})
}

// HandlePunchAir handles punching air.
func (h *Handler) HandlePunchAir(ctx *player.Context) {
	h.Dispatch(&EventPunchAir{Ctx: ctx})
}

// HandleSignEdit handles sign text editing.
func (h *Handler) HandleSignEdit(ctx *player.Context, pos cube.Pos, frontSide bool, oldText, newText string) {
	h.Dispatch(&EventSignEdit{Ctx: ctx, Position: pos, FrontSide: frontSide, OldText: oldText, NewText: newText})
}

// HandleLecternPageTurn handles page turning on lecterns.
func (h *Handler) HandleLecternPageTurn(ctx *player.Context, pos cube.Pos, oldPage int, newPage *int) {
	h.Dispatch(&EventLecternPageTurn{Ctx: ctx, Position: pos, OldPage: oldPage, NewPage: newPage})
}

// HandleItemPickup handles picking up an item.
func (h *Handler) HandleItemPickup(ctx *player.Context, it *item.Stack) {
	h.Dispatch(&EventItemPickup{Ctx: ctx, Item: it})
}

// HandleHeldSlotChange handles held hotbar slot change.
func (h *Handler) HandleHeldSlotChange(ctx *player.Context, from, to int) {
	h.Dispatch(&EventHeldSlotChange{Ctx: ctx, From: from, To: to})
}

// HandleItemDrop handles dropping an item.
func (h *Handler) HandleItemDrop(ctx *player.Context, it item.Stack) {
	h.Dispatch(&EventItemDrop{Ctx: ctx, Item: it})
}

// HandleCommandExecution handles executing a command.
func (h *Handler) HandleCommandExecution(ctx *player.Context, command cmd.Command, args []string) {
	h.Dispatch(&EventCommandExecution{Ctx: ctx, Command: command, Args: args})
}

// HandleQuit handles a player quitting the server.
func (h *Handler) HandleQuit(p *player.Player) {
	h.Dispatch(&EventQuit{P: p})
}

// HandleChangeWorld handles the player changing worlds.
func (h *Handler) HandleChangeWorld(p *player.Player, before, after *world.World) {
	h.Dispatch(&EventChangeWorld{P: p, Before: before, After: after})
}

// HandleFoodLoss handles the player losing food.
func (h *Handler) HandleFoodLoss(ctx *player.Context, from int, to *int) {
	h.Dispatch(&EventFoodLoss{Ctx: ctx, From: from, To: to})
}

// HandleHeal handles the player being healed.
func (h *Handler) HandleHeal(ctx *player.Context, health *float64, src world.HealingSource) {
	h.Dispatch(&EventHeal{Ctx: ctx, Health: health, Source: src})
}

// HandleRespawn handles the player respawning.
func (h *Handler) HandleRespawn(p *player.Player, pos *mgl64.Vec3, w **world.World) {
	h.Dispatch(&EventRespawn{P: p, Position: pos, World: w})
}

// HandleSkinChange handles the player changing their skin.
func (h *Handler) HandleSkinChange(ctx *player.Context, sk *skin.Skin) {
	h.Dispatch(&EventSkinChange{Ctx: ctx, Skin: sk})
}

// HandleItemRelease handles releasing a charged-use item.
func (h *Handler) HandleItemRelease(ctx *player.Context, it item.Stack, dur time.Duration) {
	h.Dispatch(&EventItemRelease{Ctx: ctx, Item: it, Duration: dur})
}

// HandleExperienceGain handles XP gain.
func (h *Handler) HandleExperienceGain(ctx *player.Context, amount *int) {
	h.Dispatch(&EventExperienceGain{Ctx: ctx, Amount: amount})
}

// HandleItemDamage handles damaging an item.
func (h *Handler) HandleItemDamage(ctx *player.Context, it item.Stack, damage *int) {
	h.Dispatch(&EventItemDamage{Ctx: ctx, Item: it, Damage: *damage})
}

// HandleTransfer handles server transfer.
func (h *Handler) HandleTransfer(ctx *player.Context, addr *net.UDPAddr) {
	h.Dispatch(&EventTransfer{Ctx: ctx, Address: addr})
}

// HandleDiagnostics handles a diagnostics report.
func (h *Handler) HandleDiagnostics(p *player.Player, d session.Diagnostics) {
	h.Dispatch(&EventDiagnostics{P: p, Diagnostics: d})
}
