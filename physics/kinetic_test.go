package physics

import (
	"testing"

	"github.com/lixenwraith/particle-field/core"
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/vmath"
)

func TestRenderSize_Endpoints(t *testing.T) {
	if got := RenderSize(parameter.MassMin); got != parameter.RenderSizeMin {
		t.Errorf("RenderSize(MassMin) = %d, want %d", got, parameter.RenderSizeMin)
	}
	if got := RenderSize(parameter.MassMax); got != parameter.RenderSizeMax {
		t.Errorf("RenderSize(MassMax) = %d, want %d", got, parameter.RenderSizeMax)
	}
}

func TestRenderSize_MonotonicAndTruncated(t *testing.T) {
	prev := RenderSize(parameter.MassMin)
	for m := parameter.MassMin; m <= parameter.MassMax; m += 0.01 {
		got := RenderSize(m)
		if got < prev {
			t.Fatalf("RenderSize decreased at mass %v: %d < %d", m, got, prev)
		}
		if got < parameter.RenderSizeMin || got > parameter.RenderSizeMax {
			t.Fatalf("RenderSize(%v) = %d out of range", m, got)
		}
		prev = got
	}

	// 20 + 10*(10.5-1)/19 = 25.0
	if got := RenderSize(10.5); got != 25 {
		t.Errorf("RenderSize(10.5) = %d, want 25", got)
	}
	// 20 + 10*(10-1)/19 = 24.73 truncates to 24
	if got := RenderSize(10); got != 24 {
		t.Errorf("RenderSize(10) = %d, want 24", got)
	}
}

func TestIntegrate_UnitStep(t *testing.T) {
	p := core.Particle{Pos: vmath.Vec2{X: 10, Y: 20}, Vel: vmath.Vec2{X: 1.5, Y: -2}, Mass: 3}
	Integrate(&p)
	if p.Pos != (vmath.Vec2{X: 11.5, Y: 18}) {
		t.Errorf("Pos = %v, want {11.5 18}", p.Pos)
	}
	if p.Vel != (vmath.Vec2{X: 1.5, Y: -2}) {
		t.Errorf("Integrate must not alter velocity, got %v", p.Vel)
	}
}

func TestClampBounds(t *testing.T) {
	const w, h = parameter.WorldWidth, parameter.WorldHeight
	size := float64(RenderSize(parameter.MassMax))

	tests := []struct {
		name    string
		pos     vmath.Vec2
		vel     vmath.Vec2
		wantPos vmath.Vec2
		wantVel vmath.Vec2
		want    Contact
	}{
		{
			name:    "inside",
			pos:     vmath.Vec2{X: 100, Y: 100},
			vel:     vmath.Vec2{X: 3, Y: -3},
			wantPos: vmath.Vec2{X: 100, Y: 100},
			wantVel: vmath.Vec2{X: 3, Y: -3},
			want:    ContactNone,
		},
		{
			name:    "left",
			pos:     vmath.Vec2{X: -4, Y: 100},
			vel:     vmath.Vec2{X: -5, Y: 2},
			wantPos: vmath.Vec2{X: 0, Y: 100},
			wantVel: vmath.Vec2{X: 0, Y: 2},
			want:    ContactLeft,
		},
		{
			name:    "right",
			pos:     vmath.Vec2{X: w, Y: 100},
			vel:     vmath.Vec2{X: 5, Y: 2},
			wantPos: vmath.Vec2{X: w - size, Y: 100},
			wantVel: vmath.Vec2{X: 0, Y: 2},
			want:    ContactRight,
		},
		{
			name:    "bottom-left corner",
			pos:     vmath.Vec2{X: -1, Y: h + 50},
			vel:     vmath.Vec2{X: -1, Y: 7},
			wantPos: vmath.Vec2{X: 0, Y: h - size},
			wantVel: vmath.Vec2{},
			want:    ContactLeft | ContactBottom,
		},
		{
			name:    "exactly at edge",
			pos:     vmath.Vec2{X: w - size, Y: 0},
			vel:     vmath.Vec2{X: 1, Y: -1},
			wantPos: vmath.Vec2{X: w - size, Y: 0},
			wantVel: vmath.Vec2{X: 1, Y: -1},
			want:    ContactNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := core.Particle{Pos: tt.pos, Vel: tt.vel, Mass: parameter.MassMax}
			got := ClampBounds(&p, w, h)
			if got != tt.want {
				t.Errorf("contact = %04b, want %04b", got, tt.want)
			}
			if p.Pos != tt.wantPos {
				t.Errorf("Pos = %v, want %v", p.Pos, tt.wantPos)
			}
			if p.Vel != tt.wantVel {
				t.Errorf("Vel = %v, want %v", p.Vel, tt.wantVel)
			}
		})
	}
}

func TestStep_RightWallIsInelastic(t *testing.T) {
	mass := 7.0
	size := float64(RenderSize(mass))
	ps := []core.Particle{{
		Pos:  vmath.Vec2{X: parameter.WorldWidth - size - 10, Y: 500},
		Vel:  vmath.Vec2{X: 80, Y: 0},
		Mass: mass,
	}}

	contacts, edges := Step(ps, parameter.WorldWidth, parameter.WorldHeight)

	if contacts != 1 || edges != ContactRight {
		t.Errorf("contacts=%d edges=%04b, want 1 and right", contacts, edges)
	}
	if ps[0].Pos.X != parameter.WorldWidth-size {
		t.Errorf("Pos.X = %v, want %v", ps[0].Pos.X, parameter.WorldWidth-size)
	}
	if ps[0].Vel.X != 0 {
		t.Errorf("Vel.X = %v, want 0", ps[0].Vel.X)
	}
}

func TestStep_CoincidentStaysFinite(t *testing.T) {
	ps := []core.Particle{
		{Pos: vmath.Vec2{X: 640, Y: 480}, Mass: 3},
		{Pos: vmath.Vec2{X: 640, Y: 480}, Mass: 15},
	}

	Step(ps, parameter.WorldWidth, parameter.WorldHeight)

	for i, p := range ps {
		if !vmath.V2IsFinite(p.Pos) || !vmath.V2IsFinite(p.Vel) {
			t.Errorf("particle %d not finite after step: %+v", i, p)
		}
	}
}

func TestStep_PopulationStaysInBounds(t *testing.T) {
	ps := randomPopulation(2024, parameter.ParticleCount)

	for tick := 0; tick < 200; tick++ {
		Step(ps, parameter.WorldWidth, parameter.WorldHeight)

		for i, p := range ps {
			size := float64(RenderSize(p.Mass))
			if p.Pos.X < 0 || p.Pos.X > parameter.WorldWidth-size ||
				p.Pos.Y < 0 || p.Pos.Y > parameter.WorldHeight-size {
				t.Fatalf("tick %d: particle %d out of bounds at %v (size %v)", tick, i, p.Pos, size)
			}
			if p.Mass < parameter.MassMin || p.Mass > parameter.MassMax {
				t.Fatalf("tick %d: particle %d mass %v out of range", tick, i, p.Mass)
			}
		}
	}
}
