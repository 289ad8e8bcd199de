package engine

import (
	"errors"
	"math/rand"

	"github.com/lixenwraith/particle-field/core"
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/physics"
)

// ErrStopped is returned by Step once the simulation has been stopped
var ErrStopped = errors.New("simulation stopped")

// SimState is the lifecycle state of a Simulation
type SimState uint8

const (
	StateRunning SimState = iota
	StateStopped
)

func (s SimState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// ParticleView is the read-only per-particle data handed to presentation
type ParticleView struct {
	X, Y float64
	Mass float64
	Size int
}

// StepReport summarizes one tick
type StepReport struct {
	Tick     uint64
	Contacts int
	Edges    physics.Contact
}

// Simulation owns the particle population and advances it one tick per Step
// Not safe for concurrent use; drivers call Step and Snapshot from one goroutine
type Simulation struct {
	particles     [parameter.ParticleCount]core.Particle
	width, height float64
	tick          uint64
	state         SimState
}

// NewSimulation seeds the full population from rng
// Positions are uniform over the world minus the largest render size, velocities zero
func NewSimulation(rng *rand.Rand) *Simulation {
	s := &Simulation{
		width:  parameter.WorldWidth,
		height: parameter.WorldHeight,
		state:  StateRunning,
	}

	for i := range s.particles {
		p := &s.particles[i]
		p.Pos.X = float64(rng.Intn(parameter.WorldWidth - parameter.RenderSizeMax))
		p.Pos.Y = float64(rng.Intn(parameter.WorldHeight - parameter.RenderSizeMax))
		p.Mass = parameter.MassMin + rng.Float64()*(parameter.MassMax-parameter.MassMin)
		p.Heat = parameter.InitialHeat
	}

	return s
}

// Step runs force accumulation, integration and clamping for every particle
func (s *Simulation) Step() (StepReport, error) {
	if s.state == StateStopped {
		return StepReport{Tick: s.tick}, ErrStopped
	}

	contacts, edges := physics.Step(s.particles[:], s.width, s.height)
	s.tick++

	return StepReport{
		Tick:     s.tick,
		Contacts: contacts,
		Edges:    edges,
	}, nil
}

// Stop transitions to StateStopped, idempotent
func (s *Simulation) Stop() {
	s.state = StateStopped
}

// State returns the current lifecycle state
func (s *Simulation) State() SimState {
	return s.state
}

// Tick returns the number of completed steps
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// Len returns the population size
func (s *Simulation) Len() int {
	return len(s.particles)
}

// Bounds returns the world extent particles are clamped to
func (s *Simulation) Bounds() (width, height float64) {
	return s.width, s.height
}

// Snapshot appends one view per particle to dst[:0] and returns it
// Reuse the returned slice across frames to avoid allocation
func (s *Simulation) Snapshot(dst []ParticleView) []ParticleView {
	dst = dst[:0]
	for i := range s.particles {
		p := &s.particles[i]
		dst = append(dst, ParticleView{
			X:    p.Pos.X,
			Y:    p.Pos.Y,
			Mass: p.Mass,
			Size: physics.RenderSize(p.Mass),
		})
	}
	return dst
}
