package dfx

import (
	"testing"
	"time"

	"github.com/df-mc/dragonfly/server/entity"
	"github.com/df-mc/dragonfly/server/entity/effect"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/df-mc/dragonfly/server/world/sound"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

type fakeLiving struct {
	health, max float64
	healedBy    world.HealingSource
	hurtBy      world.DamageSource
	food        int
	sounds      []world.Sound
	shown       []world.Entity
	hidden      []world.Entity
}

func (f *fakeLiving) Health() float64    { return f.health }
func (f *fakeLiving) MaxHealth() float64 { return f.max }

func (f *fakeLiving) Heal(h float64, src world.HealingSource) {
	f.health = min(f.health+h, f.max)
	f.healedBy = src
}

func (f *fakeLiving) Hurt(dmg float64, src world.DamageSource) (float64, bool) {
	dealt := min(dmg, f.health)
	f.health -= dealt
	f.hurtBy = src
	return dealt, true
}

func (f *fakeLiving) SetFood(level int)          { f.food = level }
func (f *fakeLiving) PlaySound(s world.Sound)    { f.sounds = append(f.sounds, s) }
func (f *fakeLiving) ShowEntity(e world.Entity) { f.shown = append(f.shown, e) }
func (f *fakeLiving) HideEntity(e world.Entity) { f.hidden = append(f.hidden, e) }

type fakeEmitter struct {
	sounds    []mgl64.Vec3
	particles []world.Particle
}

func (f *fakeEmitter) PlaySound(pos mgl64.Vec3, _ world.Sound) { f.sounds = append(f.sounds, pos) }
func (f *fakeEmitter) AddParticle(_ mgl64.Vec3, p world.Particle) {
	f.particles = append(f.particles, p)
}

func TestKill(t *testing.T) {
	l := &fakeLiving{health: 15, max: 20}
	Kill(l)
	require.Zero(t, l.health)
	require.IsType(t, entity.VoidDamageSource{}, l.hurtBy)
}

func TestHeal(t *testing.T) {
	l := &fakeLiving{health: 3, max: 20}
	Heal(l)
	require.Equal(t, 20.0, l.health)
	require.IsType(t, HealingSource{}, l.healedBy)

	l.healedBy = nil
	Heal(l)
	require.Nil(t, l.healedBy)
}

func TestFeed(t *testing.T) {
	l := &fakeLiving{}
	Feed(l)
	require.Equal(t, MaxFood, l.food)
}

func TestShowHide(t *testing.T) {
	a, b := &fakeLiving{}, &fakeLiving{}
	var target world.Entity

	ShowTo(target, a, b)
	HideFrom(target, b)
	require.Len(t, a.shown, 1)
	require.Len(t, b.shown, 1)
	require.Empty(t, a.hidden)
	require.Len(t, b.hidden, 1)
}

func TestSounds(t *testing.T) {
	l := &fakeLiving{}
	PlaySound(l, sound.Click{})
	PlayNote(l, sound.Piano(), 30)

	require.Len(t, l.sounds, 2)
	note, ok := l.sounds[1].(sound.Note)
	require.True(t, ok)
	require.Equal(t, 24, note.Pitch)

	e := &fakeEmitter{}
	PlaySoundAt(e, mgl64.Vec3{1, 2, 3}, sound.Click{})
	ShowParticle(e, mgl64.Vec3{}, nil)
	require.Equal(t, []mgl64.Vec3{{1, 2, 3}}, e.sounds)
	require.Len(t, e.particles, 1)
}

func TestEffect(t *testing.T) {
	e := Effect(effect.Speed)
	require.True(t, e.Infinite())
	require.Equal(t, 1, e.Level())
	require.False(t, e.ParticlesHidden())

	e = Effect(effect.Speed, Level(3), Duration(time.Minute), Particles(false))
	require.False(t, e.Infinite())
	require.Equal(t, 3, e.Level())
	require.Equal(t, time.Minute, e.Duration())
	require.True(t, e.Ambient())
	require.True(t, e.ParticlesHidden())

	e = Effect(effect.Speed, Duration(time.Second), Ambient(false), Level(0))
	require.False(t, e.Ambient())
	require.Equal(t, 1, e.Level())
}
