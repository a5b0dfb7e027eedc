package dfx

import (
	"math"

	"github.com/df-mc/dragonfly/server/entity"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/df-mc/dragonfly/server/world/sound"
	"github.com/go-gl/mathgl/mgl64"
)

// MaxFood is the food level of a player that is not hungry.
const MaxFood = 20

// Living is an entity with health, such as *player.Player.
type Living interface {
	Health() float64
	MaxHealth() float64
	Heal(health float64, src world.HealingSource)
	Hurt(dmg float64, src world.DamageSource) (float64, bool)
}

// Eater is an entity with a food level.
type Eater interface {
	SetFood(level int)
}

// Viewer can show and hide entities for itself.
type Viewer interface {
	ShowEntity(e world.Entity)
	HideEntity(e world.Entity)
}

// Listener hears sounds played to it.
type Listener interface {
	PlaySound(s world.Sound)
}

// Emitter plays sounds and particles at a position. *world.Tx implements it.
type Emitter interface {
	PlaySound(pos mgl64.Vec3, s world.Sound)
	AddParticle(pos mgl64.Vec3, p world.Particle)
}

// HealingSource is the source of healing done through Heal.
type HealingSource struct{}

// HealingSource marks HealingSource as a world.HealingSource.
func (HealingSource) HealingSource() {}

// Kill brings the health of l to zero. The damage ignores armour and
// resistance.
func Kill(l Living) {
	l.Hurt(math.MaxFloat32, entity.VoidDamageSource{})
}

// Heal restores l to full health.
func Heal(l Living) {
	if missing := l.MaxHealth() - l.Health(); missing > 0 {
		l.Heal(missing, HealingSource{})
	}
}

// Feed sets the food level of e to the maximum.
func Feed(e Eater) {
	e.SetFood(MaxFood)
}

// ShowTo shows target to every viewer.
func ShowTo(target world.Entity, viewers ...Viewer) {
	for _, v := range viewers {
		v.ShowEntity(target)
	}
}

// HideFrom hides target from every viewer.
func HideFrom(target world.Entity, viewers ...Viewer) {
	for _, v := range viewers {
		v.HideEntity(target)
	}
}

// PlaySound plays s to l at its own position.
func PlaySound(l Listener, s world.Sound) {
	l.PlaySound(s)
}

// PlaySoundAt plays s at pos for everyone nearby.
func PlaySoundAt(e Emitter, pos mgl64.Vec3, s world.Sound) {
	e.PlaySound(pos, s)
}

// PlayNote plays a note block note to l. Pitch ranges from 0 to 24.
func PlayNote(l Listener, instrument sound.Instrument, pitch int) {
	l.PlaySound(sound.Note{Instrument: instrument, Pitch: min(max(pitch, 0), 24)})
}

// ShowParticle shows p at pos for everyone nearby.
func ShowParticle(e Emitter, pos mgl64.Vec3, p world.Particle) {
	e.AddParticle(pos, p)
}
