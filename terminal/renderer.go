package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particle-field/engine"
	"github.com/lixenwraith/particle-field/parameter"
)

// Glyphs by render size band
const (
	glyphSmall  = '·'
	glyphMedium = '•'
	glyphLarge  = '●'
)

// Mass gradient endpoints (RGB)
var (
	lightColor = [3]int32{255, 250, 230}
	heavyColor = [3]int32{70, 30, 10}
)

// Status is the per-frame information shown on the bottom row
type Status struct {
	Tick      uint64
	FPS       float64
	LagFrames uint64
	Contacts  int
}

// Renderer draws particle snapshots onto a tcell screen
type Renderer struct {
	proj        Projection
	background  tcell.Color
	statusStyle tcell.Style
}

// NewRenderer creates a renderer for a cols x rows screen
func NewRenderer(cols, rows int) *Renderer {
	bg := tcell.NewRGBColor(parameter.BackgroundR, parameter.BackgroundG, parameter.BackgroundB)
	return &Renderer{
		proj:        NewProjection(cols, rows),
		background:  bg,
		statusStyle: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
	}
}

// Resize re-projects onto a new screen size; world coordinates are unaffected
func (r *Renderer) Resize(cols, rows int) {
	r.proj = NewProjection(cols, rows)
}

// Projection returns the current projection
func (r *Renderer) Projection() Projection {
	return r.proj
}

// Draw clears the screen, plots every particle at the centre of its render box and shows the frame
func (r *Renderer) Draw(screen tcell.Screen, views []engine.ParticleView, st Status) {
	screen.Fill(' ', tcell.StyleDefault.Background(r.background))

	for _, v := range views {
		half := float64(v.Size) / 2
		col, row := r.proj.Cell(v.X+half, v.Y+half)
		style := tcell.StyleDefault.Background(r.background).Foreground(MassColor(v.Mass))
		screen.SetContent(col, row, Glyph(v.Size), nil, style)
	}

	r.drawStatus(screen, st)
	screen.Show()
}

func (r *Renderer) drawStatus(screen tcell.Screen, st Status) {
	line := StatusLine(st)
	row := r.proj.StatusRow()
	for col := 0; col < r.proj.Cols; col++ {
		ch := ' '
		if col < len(line) {
			ch = rune(line[col])
		}
		screen.SetContent(col, row, ch, nil, r.statusStyle)
	}
}

// StatusLine formats the status row text
func StatusLine(st Status) string {
	return fmt.Sprintf(" tick %d  fps %.0f  lag %d  contacts %d  [q] quit", st.Tick, st.FPS, st.LagFrames, st.Contacts)
}

// Glyph picks a character for a render size
func Glyph(size int) rune {
	switch {
	case size < parameter.RenderSizeMin+3:
		return glyphSmall
	case size < parameter.RenderSizeMax-3:
		return glyphMedium
	default:
		return glyphLarge
	}
}

// MassColor interpolates from light to heavy across the mass range
func MassColor(mass float64) tcell.Color {
	t := (mass - parameter.MassMin) / (parameter.MassMax - parameter.MassMin)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	var c [3]int32
	for i := range c {
		c[i] = lightColor[i] + int32(t*float64(heavyColor[i]-lightColor[i]))
	}
	return tcell.NewRGBColor(c[0], c[1], c[2])
}
