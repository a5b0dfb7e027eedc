package interaction

import (
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

// Event is implemented by every event the Handler dispatches. The event
// structs wrap Dragonfly's handler parameters so listeners receive a single
// value instead of a method-specific argument list.
type Event interface {
	// Player returns the player the event originated from, or nil.
	Player() *player.Player
}

// BlockEvent is an event that targets a block.
type BlockEvent interface {
	Event
	BlockPos() cube.Pos
}

// EntityEvent is an event that targets another entity.
type EntityEvent interface {
	Event
	Target() world.Entity
}

// Cancellable is implemented by events whose action can be cancelled.
type Cancellable interface {
	Cancel()
}

func playerOf(ctx *player.Context) *player.Player {
	if ctx == nil {
		return nil
	}
	return ctx.Val()
}

// EventMove is emitted when a player moves.
type EventMove struct {
	Ctx      *player.Context
	Position mgl64.Vec3
	Rotation cube.Rotation
}

func (e *EventMove) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventMove) Cancel()                { e.Ctx.Cancel() }

// EventJump is emitted when a player jumps.
type EventJump struct {
	P *player.Player
}

func (e *EventJump) Player() *player.Player { return e.P }

// EventTeleport is emitted when a player is teleported.
type EventTeleport struct {
	Ctx      *player.Context
	Position mgl64.Vec3
}

func (e *EventTeleport) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventTeleport) Cancel()                { e.Ctx.Cancel() }

// EventToggleSprint is emitted when a player toggles sprinting.
type EventToggleSprint struct {
	Ctx   *player.Context
	After bool
}

func (e *EventToggleSprint) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventToggleSprint) Cancel()                { e.Ctx.Cancel() }

// EventToggleSneak is emitted when a player toggles sneaking.
type EventToggleSneak struct {
	Ctx   *player.Context
	After bool
}

func (e *EventToggleSneak) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventToggleSneak) Cancel()                { e.Ctx.Cancel() }

// EventChat is emitted when a player sends a chat message.
type EventChat struct {
	Ctx     *player.Context
	Message *string
}

func (e *EventChat) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventChat) Cancel()                { e.Ctx.Cancel() }

// EventHurt is emitted when a player is hurt.
type EventHurt struct {
	Ctx      *player.Context
	Damage   *float64
	Immune   bool
	Immunity *time.Duration
	Source   world.DamageSource
}

func (e *EventHurt) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventHurt) Cancel()                { e.Ctx.Cancel() }

// EventDeath is emitted when a player dies.
type EventDeath struct {
	P             *player.Player
	Source        world.DamageSource
	KeepInventory *bool
}

func (e *EventDeath) Player() *player.Player { return e.P }

// EventFireExtinguish is emitted when a player extinguishes a fire block.
type EventFireExtinguish struct {
	Ctx      *player.Context
	Position cube.Pos
}

func (e *EventFireExtinguish) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventFireExtinguish) BlockPos() cube.Pos     { return e.Position }
func (e *EventFireExtinguish) Cancel()                { e.Ctx.Cancel() }

// EventStartBreak is emitted when a player starts breaking a block.
type EventStartBreak struct {
	Ctx      *player.Context
	Position cube.Pos
}

func (e *EventStartBreak) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventStartBreak) BlockPos() cube.Pos     { return e.Position }
func (e *EventStartBreak) Cancel()                { e.Ctx.Cancel() }

// EventBlockBreak is emitted when a player breaks a block.
type EventBlockBreak struct {
	Ctx        *player.Context
	Position   cube.Pos
	Drops      *[]item.Stack
	Experience *int
}

func (e *EventBlockBreak) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventBlockBreak) BlockPos() cube.Pos     { return e.Position }
func (e *EventBlockBreak) Cancel()                { e.Ctx.Cancel() }

// EventBlockPlace is emitted when a player places a block.
type EventBlockPlace struct {
	Ctx      *player.Context
	Position cube.Pos
	Block    world.Block
}

func (e *EventBlockPlace) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventBlockPlace) BlockPos() cube.Pos     { return e.Position }
func (e *EventBlockPlace) Cancel()                { e.Ctx.Cancel() }

// EventBlockPick is emitted when a player picks a block.
type EventBlockPick struct {
	Ctx      *player.Context
	Position cube.Pos
	Block    world.Block
}

func (e *EventBlockPick) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventBlockPick) BlockPos() cube.Pos     { return e.Position }
func (e *EventBlockPick) Cancel()                { e.Ctx.Cancel() }

// EventItemUse is emitted when a player uses an item in the air.
type EventItemUse struct {
	Ctx *player.Context
}

func (e *EventItemUse) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventItemUse) Cancel()                { e.Ctx.Cancel() }

// EventItemUseOnBlock is emitted when a player uses an item on a block,
// which includes opening containers such as chests.
type EventItemUseOnBlock struct {
	Ctx      *player.Context
	Position cube.Pos
	Face     cube.Face
	ClickPos mgl64.Vec3
}

func (e *EventItemUseOnBlock) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventItemUseOnBlock) BlockPos() cube.Pos     { return e.Position }
func (e *EventItemUseOnBlock) Cancel()                { e.Ctx.Cancel() }

// EventItemUseOnEntity is emitted when a player uses an item on an entity.
type EventItemUseOnEntity struct {
	Ctx    *player.Context
	Entity world.Entity
}

func (e *EventItemUseOnEntity) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventItemUseOnEntity) Target() world.Entity   { return e.Entity }
func (e *EventItemUseOnEntity) Cancel()                { e.Ctx.Cancel() }

// EventItemConsume is emitted when a player consumes an item.
type EventItemConsume struct {
	Ctx  *player.Context
	Item item.Stack
}

func (e *EventItemConsume) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventItemConsume) Cancel()                { e.Ctx.Cancel() }

// EventAttackEntity is emitted when a player attacks an entity.
type EventAttackEntity struct {
	Ctx      *player.Context
	Entity   world.Entity
	Force    *float64
	Height   *float64
	Critical *bool
}

func (e *EventAttackEntity) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventAttackEntity) Target() world.Entity   { return e.Entity }
func (e *EventAttackEntity) Cancel()                { e.Ctx.Cancel() }

// EventPunchAir is emitted when a player punches air.
type EventPunchAir struct {
	Ctx *player.Context
}

func (e *EventPunchAir) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventPunchAir) Cancel()                { e.Ctx.Cancel() }

// EventSignEdit is emitted when a player edits a sign.
type EventSignEdit struct {
	Ctx       *player.Context
	Position  cube.Pos
	FrontSide bool
	OldText   string
	NewText   string
}

func (e *EventSignEdit) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventSignEdit) BlockPos() cube.Pos     { return e.Position }
func (e *EventSignEdit) Cancel()                { e.Ctx.Cancel() }

// EventLecternPageTurn is emitted when a player turns a lectern page.
type EventLecternPageTurn struct {
	Ctx      *player.Context
	Position cube.Pos
	OldPage  int
	NewPage  *int
}

func (e *EventLecternPageTurn) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventLecternPageTurn) BlockPos() cube.Pos     { return e.Position }
func (e *EventLecternPageTurn) Cancel()                { e.Ctx.Cancel() }

// EventItemPickup is emitted when a player picks up an item.
type EventItemPickup struct {
	Ctx  *player.Context
	Item *item.Stack
}

func (e *EventItemPickup) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventItemPickup) Cancel()                { e.Ctx.Cancel() }

// EventHeldSlotChange is emitted when a player changes their held slot.
type EventHeldSlotChange struct {
	Ctx  *player.Context
	From int
	To   int
}

func (e *EventHeldSlotChange) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventHeldSlotChange) Cancel()                { e.Ctx.Cancel() }

// EventItemDrop is emitted when a player drops an item.
type EventItemDrop struct {
	Ctx  *player.Context
	Item item.Stack
}

func (e *EventItemDrop) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventItemDrop) Cancel()                { e.Ctx.Cancel() }

// EventCommandExecution is emitted when a player executes a command.
type EventCommandExecution struct {
	Ctx     *player.Context
	Command cmd.Command
	Args    []string
}

func (e *EventCommandExecution) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventCommandExecution) Cancel()                { e.Ctx.Cancel() }

// EventQuit is emitted when a player quits the server.
type EventQuit struct {
	P *player.Player
}

func (e *EventQuit) Player() *player.Player { return e.P }

// EventChangeWorld is emitted when a player changes worlds.
type EventChangeWorld struct {
	P      *player.Player
	Before *world.World
	After  *world.World
}

func (e *EventChangeWorld) Player() *player.Player { return e.P }

// EventFoodLoss is emitted when a player loses food.
type EventFoodLoss struct {
	Ctx  *player.Context
	From int
	To   *int
}

func (e *EventFoodLoss) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventFoodLoss) Cancel()                { e.Ctx.Cancel() }

// EventHeal is emitted when a player is healed.
type EventHeal struct {
	Ctx    *player.Context
	Health *float64
	Source world.HealingSource
}

func (e *EventHeal) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventHeal) Cancel()                { e.Ctx.Cancel() }

// EventRespawn is emitted when a player respawns.
type EventRespawn struct {
	P        *player.Player
	Position *mgl64.Vec3
	World    **world.World
}

func (e *EventRespawn) Player() *player.Player { return e.P }

// EventSkinChange is emitted when a player changes their skin.
type EventSkinChange struct {
	Ctx  *player.Context
	Skin *skin.Skin
}

func (e *EventSkinChange) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventSkinChange) Cancel()                { e.Ctx.Cancel() }

// EventItemRelease is emitted when a player releases a charged item.
type EventItemRelease struct {
	Ctx      *player.Context
	Item     item.Stack
	Duration time.Duration
}

func (e *EventItemRelease) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventItemRelease) Cancel()                { e.Ctx.Cancel() }

// EventExperienceGain is emitted when a player gains experience.
type EventExperienceGain struct {
	Ctx    *player.Context
	Amount *int
}

func (e *EventExperienceGain) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventExperienceGain) Cancel()                { e.Ctx.Cancel() }

// EventItemDamage is emitted when an item held by a player takes damage.
type EventItemDamage struct {
	Ctx    *player.Context
	Item   item.Stack
	Damage int
}

func (e *EventItemDamage) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventItemDamage) Cancel()                { e.Ctx.Cancel() }

// EventTransfer is emitted when a player is transferred to another server.
type EventTransfer struct {
	Ctx     *player.Context
	Address *net.UDPAddr
}

func (e *EventTransfer) Player() *player.Player { return playerOf(e.Ctx) }
func (e *EventTransfer) Cancel()                { e.Ctx.Cancel() }

// EventDiagnostics is emitted when a player's client reports diagnostics.
type EventDiagnostics struct {
	P           *player.Player
	Diagnostics session.Diagnostics
}

func (e *EventDiagnostics) Player() *player.Player { return e.P }
