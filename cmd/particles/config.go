package main

import (
	"flag"
	"fmt"

	"github.com/lixenwraith/particle-field/parameter"
)

const (
	driverTerminal = "terminal"
	driverWindow   = "window"
)

// Config is the resolved command line
type Config struct {
	Driver     string
	Seed       int64
	FPS        int
	Mute       bool
	VSync      bool
	Windowed   bool
	Debug      bool
	SpritePath string
}

// parseFlags registers and parses flags on fs
func parseFlags(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	fs.StringVar(&cfg.Driver, "driver", driverTerminal, "Presentation: terminal, window")
	fs.Int64Var(&cfg.Seed, "seed", 0, "Random seed for the initial population (0 = time based)")
	fs.IntVar(&cfg.FPS, "fps", parameter.FrameRate, "Target frames per second")
	fs.BoolVar(&cfg.Mute, "mute", false, "Disable audio cues")
	fs.BoolVar(&cfg.VSync, "vsync", false, "Enable vsync (window driver)")
	fs.BoolVar(&cfg.Windowed, "windowed", false, "Run in a window instead of full-screen (window driver)")
	fs.BoolVar(&cfg.Debug, "debug", false, "Write logs to logs/particles.log")
	fs.StringVar(&cfg.SpritePath, "sprite", "", "Sprite image (default: particle.png next to the executable)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch cfg.Driver {
	case driverTerminal, driverWindow:
	case "tui", "tty":
		cfg.Driver = driverTerminal
	case "gui", "sdl", "ebiten":
		cfg.Driver = driverWindow
	default:
		return nil, fmt.Errorf("unknown driver %q (want %s or %s)", cfg.Driver, driverTerminal, driverWindow)
	}

	if cfg.FPS <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", cfg.FPS)
	}

	return cfg, nil
}
