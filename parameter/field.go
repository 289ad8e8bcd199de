package parameter

// World extent in pixels, fixed regardless of output surface
const (
	WorldWidth  = 3840
	WorldHeight = 2160
)

// Population
const (
	// ParticleCount is the fixed number of particles for the lifetime of a run
	ParticleCount = 128

	// InitialHeat is assigned to every particle at creation and never read again
	InitialHeat = 1.0
)

// Mass range, inclusive
const (
	MassMin = 1.0
	MassMax = 20.0
)

// Force law
const (
	// GravitationalConstant scales pairwise attraction G*m1*m2/d^2
	GravitationalConstant = 7.0

	// RepulsionConstant scales short-range repulsion K/d^3, multiplied by MassMax
	RepulsionConstant = 20.0
)

// Render size in pixels, interpolated linearly across the mass range
const (
	RenderSizeMin = 20
	RenderSizeMax = 30
)
