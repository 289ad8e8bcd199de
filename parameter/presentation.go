package parameter

import "time"

// Frame pacing
const (
	// FrameRate is the default target frames per second for both drivers
	FrameRate = 60

	// FrameInterval is the frame budget at FrameRate
	FrameInterval = time.Second / FrameRate
)

// Sprite
const (
	// SpriteFileName is looked up next to the executable
	SpriteFileName = "particle.png"

	// SpriteSourceSize is the square region of the sprite sheet that is drawn
	SpriteSourceSize = 5

	// WindowTitle is shown by the window driver
	WindowTitle = "Particle Field"
)

// Background colour (RGB)
const (
	BackgroundR = 153
	BackgroundG = 138
	BackgroundB = 78
)

// Audio cues
const (
	// ImpactCooldown rate-limits wall contact clicks
	ImpactCooldown = 120 * time.Millisecond

	// ImpactContactsFull is the contact count at which the click reaches full volume
	ImpactContactsFull = 16

	// LagCooldown rate-limits the lag-frame buzz
	LagCooldown = 500 * time.Millisecond
)
