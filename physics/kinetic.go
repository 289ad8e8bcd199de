package physics

import (
	"github.com/lixenwraith/particle-field/core"
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/vmath"
)

// Contact is a bitmask of world edges touched during clamping
type Contact uint8

const (
	ContactLeft Contact = 1 << iota
	ContactRight
	ContactTop
	ContactBottom
)

// ContactNone means the particle stayed inside bounds
const ContactNone Contact = 0

// RenderSize maps mass linearly onto [RenderSizeMin, RenderSizeMax], truncated
func RenderSize(mass float64) int {
	span := float64(parameter.RenderSizeMax - parameter.RenderSizeMin)
	frac := (mass - parameter.MassMin) / (parameter.MassMax - parameter.MassMin)
	return int(parameter.RenderSizeMin + span*frac)
}

// Integrate advances position by one tick of velocity: p = p + v
func Integrate(p *core.Particle) {
	p.Pos = vmath.V2Add(p.Pos, p.Vel)
}

// ApplyImpulse adds velocity delta
func ApplyImpulse(p *core.Particle, dv vmath.Vec2) {
	p.Vel = vmath.V2Add(p.Vel, dv)
}

// ClampBounds pins the render box inside [0,width]x[0,height]
// The velocity component of every clamped axis is zeroed (inelastic), no reflection
func ClampBounds(p *core.Particle, width, height float64) Contact {
	size := float64(RenderSize(p.Mass))
	var c Contact

	if p.Pos.X < 0 {
		p.Pos.X = 0
		p.Vel.X = 0
		c |= ContactLeft
	}
	if p.Pos.X > width-size {
		p.Pos.X = width - size
		p.Vel.X = 0
		c |= ContactRight
	}
	if p.Pos.Y < 0 {
		p.Pos.Y = 0
		p.Vel.Y = 0
		c |= ContactTop
	}
	if p.Pos.Y > height-size {
		p.Pos.Y = height - size
		p.Vel.Y = 0
		c |= ContactBottom
	}

	return c
}

// Step advances the whole population one tick: forces, then integration and clamping
// Returns the number of particles that touched an edge and the union of edges touched
func Step(particles []core.Particle, width, height float64) (contacts int, edges Contact) {
	AccumulateForces(particles)
	for i := range particles {
		Integrate(&particles[i])
		if c := ClampBounds(&particles[i], width, height); c != ContactNone {
			contacts++
			edges |= c
		}
	}
	return contacts, edges
}
