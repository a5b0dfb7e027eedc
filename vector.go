package dfx

import (
	"cmp"
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl64"
)

// Abs returns the euclidean norm of v.
func Abs(v mgl64.Vec3) float64 {
	return v.Len()
}

// Neg returns v with every component negated.
func Neg(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{-v[0], -v[1], -v[2]}
}

// Compare compares a and b by their norm.
func Compare(a, b mgl64.Vec3) int {
	return cmp.Compare(a.Len(), b.Len())
}

// Scale returns v multiplied by s.
func Scale[N ~int | ~int32 | ~int64 | ~float32 | ~float64](v mgl64.Vec3, s N) mgl64.Vec3 {
	return v.Mul(float64(s))
}

// Location is a position and rotation in a world.
type Location struct {
	World *world.World
	Pos   mgl64.Vec3
	Rot   cube.Rotation
}

// Oriented is anything with a position and rotation, such as a world.Entity.
type Oriented interface {
	Position() mgl64.Vec3
	Rotation() cube.Rotation
}

// LocationOf returns the location of o in w.
func LocationOf(o Oriented, w *world.World) Location {
	return Location{World: w, Pos: o.Position(), Rot: o.Rotation()}
}

// Add returns l moved by v.
func (l Location) Add(v mgl64.Vec3) Location {
	l.Pos = l.Pos.Add(v)
	return l
}

// Sub returns l moved by -v.
func (l Location) Sub(v mgl64.Vec3) Location {
	l.Pos = l.Pos.Sub(v)
	return l
}

// Block returns the block position containing l.
func (l Location) Block() cube.Pos {
	return cube.PosFromVec3(l.Pos)
}

// Distance returns the distance between l and o. Locations in different
// worlds are infinitely far apart.
func (l Location) Distance(o Location) float64 {
	if l.World != o.World {
		return math.Inf(1)
	}
	return l.Pos.Sub(o.Pos).Len()
}
