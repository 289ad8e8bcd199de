package physics

import (
	"github.com/lixenwraith/particle-field/core"
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/vmath"
)

// Gravity returns attraction magnitude G*m1*m2/d^2, +Inf at d == 0
func Gravity(m1, m2, dist float64) float64 {
	return parameter.GravitationalConstant * m1 * m2 / (dist * dist)
}

// Repulsion returns -K/d^3*MassMax, negative so it acts away from the partner
func Repulsion(dist float64) float64 {
	return -parameter.RepulsionConstant / (dist * dist * dist) * parameter.MassMax
}

// PairImpulse returns velocity deltas for a and b from one pair interaction
// Each non-finite term is dropped independently
func PairImpulse(a, b *core.Particle) (da, db vmath.Vec2) {
	dist := vmath.V2Distance(a.Pos, b.Pos)
	toB := vmath.V2Normalize(vmath.V2Sub(b.Pos, a.Pos))
	toA := vmath.V2Normalize(vmath.V2Sub(a.Pos, b.Pos))

	if g := Gravity(a.Mass, b.Mass, dist); vmath.IsFinite(g) {
		da = vmath.V2Add(da, vmath.V2Scale(toB, g/a.Mass))
		db = vmath.V2Add(db, vmath.V2Scale(toA, g/b.Mass))
	}

	if r := Repulsion(dist); vmath.IsFinite(r) {
		da = vmath.V2Add(da, vmath.V2Scale(toB, r/a.Mass))
		db = vmath.V2Add(db, vmath.V2Scale(toA, r/b.Mass))
	}

	return da, db
}

// AccumulateForces applies PairImpulse to every unordered pair once, in index order
// Positions are not touched, so every pair sees pre-step positions
func AccumulateForces(particles []core.Particle) {
	for i := 0; i < len(particles); i++ {
		a := &particles[i]
		for j := i + 1; j < len(particles); j++ {
			b := &particles[j]
			da, db := PairImpulse(a, b)
			ApplyImpulse(a, da)
			ApplyImpulse(b, db)
		}
	}
}
