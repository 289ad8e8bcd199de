package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/particle-field/engine"
	"github.com/lixenwraith/particle-field/parameter"
)

// hudScale enlarges the 7x13 bitmap font at world resolution
const hudScale = 3

// Cues receives simulation events that have an audible side
type Cues interface {
	PlayImpact(contacts int)
	PlayLag()
}

type silentCues struct{}

func (silentCues) PlayImpact(int) {}
func (silentCues) PlayLag()       {}

// Game adapts a Simulation to ebiten.Game
// ebiten paces Update at TPS; the pacer only measures and reports overruns
type Game struct {
	ctx    context.Context
	sim    *engine.Simulation
	pacer  *engine.FramePacer
	sprite *ebiten.Image
	cues   Cues

	views   []engine.ParticleView
	last    engine.StepReport
	showHUD bool
	bg      color.RGBA
	hudFg   color.RGBA
}

// NewGame creates a game over sim; a nil cues disables audio feedback
func NewGame(ctx context.Context, sim *engine.Simulation, pacer *engine.FramePacer, sprite *ebiten.Image, cues Cues) *Game {
	if cues == nil {
		cues = silentCues{}
	}
	return &Game{
		ctx:     ctx,
		sim:     sim,
		pacer:   pacer,
		sprite:  sprite,
		cues:    cues,
		views:   make([]engine.ParticleView, 0, sim.Len()),
		showHUD: true,
		bg:      color.RGBA{parameter.BackgroundR, parameter.BackgroundG, parameter.BackgroundB, 0xff},
		hudFg:   color.RGBA{0x20, 0x18, 0x08, 0xff},
	}
}

// Update advances one tick or terminates on quit
func (g *Game) Update() error {
	if g.quitRequested() {
		g.sim.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	return g.tick()
}

func (g *Game) quitRequested() bool {
	if g.ctx.Err() != nil {
		return true
	}
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		ebiten.IsWindowBeingClosed()
}

// tick runs one step and snapshots it for Draw
func (g *Game) tick() error {
	g.pacer.Begin()

	rep, err := g.sim.Step()
	if err != nil {
		if errors.Is(err, engine.ErrStopped) {
			return ebiten.Termination
		}
		return fmt.Errorf("simulation step: %w", err)
	}
	g.last = rep
	if rep.Contacts > 0 {
		g.cues.PlayImpact(rep.Contacts)
	}
	g.views = g.sim.Snapshot(g.views)

	if fr := g.pacer.Observe(); fr.OverBudget {
		g.cues.PlayLag()
	}
	return nil
}

// Draw renders the last snapshot; it never touches the simulation
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)

	sb := g.sprite.Bounds()
	for _, v := range g.views {
		op := &ebiten.DrawImageOptions{}
		op.GeoM = SpriteGeoM(v, sb.Dx(), sb.Dy())
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(g.sprite, op)
	}

	if g.showHUD {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(hudScale, hudScale)
		op.GeoM.Translate(12*hudScale, 16*hudScale)
		op.ColorScale.ScaleWithColor(g.hudFg)
		text.DrawWithOptions(screen, HUDLine(g.last, ebiten.ActualTPS(), g.pacer.LagFrames()), basicfont.Face7x13, op)
	}
}

// Layout fixes the logical screen to the world; ebiten scales it to the window
func (g *Game) Layout(_, _ int) (int, int) {
	return parameter.WorldWidth, parameter.WorldHeight
}

// SpriteGeoM scales a sw x sh sprite to the particle's render size at its integer position
func SpriteGeoM(v engine.ParticleView, sw, sh int) ebiten.GeoM {
	var m ebiten.GeoM
	if sw > 0 && sh > 0 {
		m.Scale(float64(v.Size)/float64(sw), float64(v.Size)/float64(sh))
	}
	m.Translate(math.Trunc(v.X), math.Trunc(v.Y))
	return m
}

// HUDLine formats the overlay text
func HUDLine(rep engine.StepReport, tps float64, lag uint64) string {
	return fmt.Sprintf("tick %d  tps %.0f  lag %d  contacts %d  [h] hud  [q] quit", rep.Tick, tps, lag, rep.Contacts)
}
