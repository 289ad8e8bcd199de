package terminal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particle-field/engine"
)

// Cues receives simulation events that have an audible side
type Cues interface {
	PlayImpact(contacts int)
	PlayLag()
}

type silentCues struct{}

func (silentCues) PlayImpact(int) {}
func (silentCues) PlayLag()       {}

// Driver runs the simulation against a tcell screen: step, draw, poll, pace
type Driver struct {
	screen   tcell.Screen
	sim      *engine.Simulation
	pacer    *engine.FramePacer
	renderer *Renderer
	cues     Cues

	events chan tcell.Event
	done   chan struct{}
	views  []engine.ParticleView
	last   engine.StepReport
}

// NewDriver wires a driver; screen must already be initialized
// A nil cues disables audio feedback
func NewDriver(screen tcell.Screen, sim *engine.Simulation, pacer *engine.FramePacer, cues Cues) *Driver {
	if cues == nil {
		cues = silentCues{}
	}
	cols, rows := screen.Size()
	return &Driver{
		screen:   screen,
		sim:      sim,
		pacer:    pacer,
		renderer: NewRenderer(cols, rows),
		cues:     cues,
		events:   make(chan tcell.Event, 256),
		done:     make(chan struct{}),
		views:    make([]engine.ParticleView, 0, sim.Len()),
	}
}

// Run loops until a quit key, ctx cancellation, or the simulation stops
// The simulation is stopped on return
func (d *Driver) Run(ctx context.Context) error {
	defer close(d.done)
	defer d.sim.Stop()

	go d.pollEvents()

	for {
		d.pacer.Begin()

		rep, err := d.sim.Step()
		if err != nil {
			if errors.Is(err, engine.ErrStopped) {
				return nil
			}
			return fmt.Errorf("simulation step: %w", err)
		}
		d.last = rep
		if rep.Contacts > 0 {
			d.cues.PlayImpact(rep.Contacts)
		}

		d.views = d.sim.Snapshot(d.views)
		d.renderer.Draw(d.screen, d.views, Status{
			Tick:      rep.Tick,
			FPS:       d.pacer.FPS(),
			LagFrames: d.pacer.LagFrames(),
			Contacts:  rep.Contacts,
		})

		if !d.drainEvents(ctx) {
			return nil
		}

		if fr := d.pacer.End(); fr.OverBudget {
			d.cues.PlayLag()
		}
	}
}

// LastReport returns the report of the most recent step
func (d *Driver) LastReport() engine.StepReport {
	return d.last
}

// pollEvents forwards screen events until the screen is finalized or Run returns
func (d *Driver) pollEvents() {
	defer func() {
		if r := recover(); r != nil {
			d.screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := d.screen.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		select {
		case d.events <- ev:
		case <-d.done:
			return
		}
	}
}

// drainEvents handles every pending event without blocking, false means quit
func (d *Driver) drainEvents(ctx context.Context) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case ev := <-d.events:
			if !d.handleEvent(ev) {
				return false
			}
		default:
			return true
		}
	}
}

func (d *Driver) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuitKey(ev) {
			return false
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		d.renderer.Resize(cols, rows)
		d.screen.Sync()
	}
	return true
}

// IsQuitKey reports Escape, Ctrl-C, q or Q
func IsQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
