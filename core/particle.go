package core

import "github.com/lixenwraith/particle-field/vmath"

// Particle is a point mass in world space
type Particle struct {
	// Pos is the top-left corner of the particle's render box in world pixels
	Pos vmath.Vec2
	// Vel is displacement per tick, accumulated by pair impulses
	Vel vmath.Vec2
	// Mass is fixed at creation within [parameter.MassMin, parameter.MassMax]
	Mass float64
	// Heat is initialized and carried but not part of the force law
	Heat float64
}
