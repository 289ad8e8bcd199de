package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lixenwraith/particle-field/audio"
	"github.com/lixenwraith/particle-field/engine"
	"github.com/lixenwraith/particle-field/service"
	"github.com/lixenwraith/particle-field/terminal"
	"github.com/lixenwraith/particle-field/window"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "particles: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "particles: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *Config) error {
	hub := service.NewHub()
	audioSvc := audio.NewService()
	for _, svc := range []service.Service{newLogSink(), audioSvc} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}

	audioCfg := audio.LoadConfig()
	if cfg.Mute {
		audioCfg.Enabled = false
	}
	if err := hub.InitAll(&logConfig{Debug: cfg.Debug}, audioCfg); err != nil {
		return err
	}
	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, unix.SIGTERM, unix.SIGHUP)
	defer stop()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("starting: driver=%s seed=%d fps=%d", cfg.Driver, seed, cfg.FPS)

	sim := engine.NewSimulation(rand.New(rand.NewSource(seed)))
	clock := engine.NewTimeProvider()
	cues := audioSvc.Manager()

	var err error
	switch cfg.Driver {
	case driverWindow:
		err = window.Run(ctx, sim, clock, window.Options{
			FPS:        cfg.FPS,
			VSync:      cfg.VSync,
			Windowed:   cfg.Windowed,
			SpritePath: cfg.SpritePath,
		}, cues)
	default:
		err = runTerminal(ctx, sim, engine.NewFramePacer(cfg.FPS, clock), cues)
	}

	log.Printf("stopped after %d ticks", sim.Tick())
	return err
}

func runTerminal(ctx context.Context, sim *engine.Simulation, pacer *engine.FramePacer, cues terminal.Cues) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("terminal driver needs a TTY on stdout (try -driver window)")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mPARTICLES CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.HideCursor()
	return terminal.NewDriver(screen, sim, pacer, cues).Run(ctx)
}
