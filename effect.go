package dfx

import (
	"time"

	"github.com/df-mc/dragonfly/server/entity/effect"
)

type effectConfig struct {
	duration  time.Duration
	level     int
	ambient   bool
	particles bool
}

// EffectOption configures an effect created with Effect.
type EffectOption func(*effectConfig)

// Duration limits the effect to d. By default effects are infinite.
func Duration(d time.Duration) EffectOption {
	return func(c *effectConfig) {
		c.duration = d
	}
}

// Level sets the level of the effect, starting at 1.
func Level(lvl int) EffectOption {
	return func(c *effectConfig) {
		c.level = max(lvl, 1)
	}
}

// Ambient sets whether a timed effect is ambient, as if applied by a beacon.
func Ambient(ambient bool) EffectOption {
	return func(c *effectConfig) {
		c.ambient = ambient
	}
}

// Particles sets whether the effect shows particles.
func Particles(particles bool) EffectOption {
	return func(c *effectConfig) {
		c.particles = particles
	}
}

// Effect creates a potion effect of type t. Without options the effect is
// infinite, level 1, ambient and shows particles. Infinite effects are never
// ambient.
func Effect(t effect.LastingType, opts ...EffectOption) effect.Effect {
	c := effectConfig{level: 1, ambient: true, particles: true}
	for _, opt := range opts {
		opt(&c)
	}

	var e effect.Effect
	switch {
	case c.duration <= 0:
		e = effect.NewInfinite(t, c.level)
	case c.ambient:
		e = effect.NewAmbient(t, c.level, c.duration)
	default:
		e = effect.New(t, c.level, c.duration)
	}
	if !c.particles {
		e = e.WithoutParticles()
	}
	return e
}
