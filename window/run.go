package window

import (
	"context"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/particle-field/engine"
	"github.com/lixenwraith/particle-field/parameter"
)

// Options configures the window driver
type Options struct {
	// FPS is the update rate; non-positive means parameter.FrameRate
	FPS int
	// VSync is off unless requested
	VSync bool
	// Windowed disables full-screen
	Windowed bool
	// SpritePath overrides the sprite next to the executable
	SpritePath string
}

// Run opens the window and blocks until quit or ctx cancellation
func Run(ctx context.Context, sim *engine.Simulation, clock engine.TimeSource, opts Options, cues Cues) error {
	fps := opts.FPS
	if fps <= 0 {
		fps = parameter.FrameRate
	}

	sprite := resolveSprite(opts.SpritePath)

	ebiten.SetWindowTitle(parameter.WindowTitle)
	ebiten.SetWindowSize(parameter.WorldWidth/3, parameter.WorldHeight/3)
	ebiten.SetFullscreen(!opts.Windowed)
	ebiten.SetVsyncEnabled(opts.VSync)
	ebiten.SetTPS(fps)
	ebiten.SetWindowClosingHandled(true)

	game := NewGame(ctx, sim, engine.NewFramePacer(fps, clock), sprite, cues)
	// Termination from Update makes RunGame return nil
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func resolveSprite(path string) *ebiten.Image {
	if path == "" {
		p, err := DefaultSpritePath()
		if err != nil {
			log.Printf("sprite: %v, using procedural disc", err)
			return ebiten.NewImageFromImage(DiscImage(discSize))
		}
		path = p
	}

	sprite, err := LoadSprite(path)
	if err != nil {
		log.Printf("sprite: %v, using procedural disc", err)
		return ebiten.NewImageFromImage(DiscImage(discSize))
	}
	return sprite
}
