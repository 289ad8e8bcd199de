package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/particle-field/core"
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/vmath"
)

func particleAt(x, y, mass float64) core.Particle {
	return core.Particle{Pos: vmath.Vec2{X: x, Y: y}, Mass: mass, Heat: parameter.InitialHeat}
}

func randomPopulation(seed int64, n int) []core.Particle {
	rng := rand.New(rand.NewSource(seed))
	ps := make([]core.Particle, n)
	for i := range ps {
		ps[i] = particleAt(
			float64(rng.Intn(parameter.WorldWidth-parameter.RenderSizeMax)),
			float64(rng.Intn(parameter.WorldHeight-parameter.RenderSizeMax)),
			parameter.MassMin+rng.Float64()*(parameter.MassMax-parameter.MassMin),
		)
	}
	return ps
}

func TestPairImpulse_Antiparallel(t *testing.T) {
	tests := []struct {
		name string
		a, b core.Particle
	}{
		{"horizontal", particleAt(0, 0, 1), particleAt(50, 0, 20)},
		{"diagonal", particleAt(10, 10, 5.5), particleAt(310, 410, 3)},
		{"close", particleAt(100, 100, 19), particleAt(101.5, 99, 2)},
		{"far", particleAt(0, 0, 7), particleAt(3000, 2000, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			da, db := PairImpulse(&tt.a, &tt.b)
			if vmath.V2Mag(da) == 0 || vmath.V2Mag(db) == 0 {
				t.Fatalf("expected non-zero impulses, got da=%v db=%v", da, db)
			}

			ua := vmath.V2Normalize(da)
			ub := vmath.V2Normalize(db)
			if dot := vmath.V2Dot(ua, ub); math.Abs(dot+1) > 1e-9 {
				t.Errorf("impulse directions not antiparallel: dot=%v", dot)
			}

			// Equal and opposite momentum transfer
			pa := vmath.V2Scale(da, tt.a.Mass)
			pb := vmath.V2Scale(db, tt.b.Mass)
			sum := vmath.V2Add(pa, pb)
			scale := vmath.V2Mag(pa)
			if vmath.V2Mag(sum) > 1e-9*scale {
				t.Errorf("momentum not conserved: m_a*da + m_b*db = %v", sum)
			}
		})
	}
}

func TestPairImpulse_CoincidentSkipsBothTerms(t *testing.T) {
	a := particleAt(200, 200, 4)
	b := particleAt(200, 200, 9)

	da, db := PairImpulse(&a, &b)
	if da != (vmath.Vec2{}) || db != (vmath.Vec2{}) {
		t.Errorf("coincident pair should produce no impulse, got da=%v db=%v", da, db)
	}
}

func TestAccumulateForces_TwoBodyAttraction(t *testing.T) {
	ps := []core.Particle{
		particleAt(1000, 1000, 10),
		particleAt(1100, 1000, 10),
	}

	AccumulateForces(ps)

	gravityOnly := parameter.GravitationalConstant * 10 * 10 / (100.0 * 100.0) / 10
	net := gravityOnly + Repulsion(100)/10

	if ps[0].Vel.X <= 0 || ps[1].Vel.X >= 0 {
		t.Fatalf("particles should move toward each other, got v0=%v v1=%v", ps[0].Vel, ps[1].Vel)
	}
	if ps[0].Vel.Y != 0 || ps[1].Vel.Y != 0 {
		t.Errorf("no vertical component expected, got v0=%v v1=%v", ps[0].Vel, ps[1].Vel)
	}
	for i, p := range ps {
		mag := vmath.V2Mag(p.Vel)
		if math.Abs(mag-net) > 1e-12 {
			t.Errorf("particle %d speed = %v, want %v", i, mag, net)
		}
		if math.Abs(mag-gravityOnly)/gravityOnly > 0.01 {
			t.Errorf("particle %d speed = %v, want within 1%% of gravity term %v", i, mag, gravityOnly)
		}
	}
}

func TestAccumulateForces_RepulsionDominatesUpClose(t *testing.T) {
	// At d=1 with unit masses: gravity 7, repulsion -400
	ps := []core.Particle{
		particleAt(500, 500, 1),
		particleAt(501, 500, 1),
	}

	AccumulateForces(ps)

	if ps[0].Vel.X >= 0 || ps[1].Vel.X <= 0 {
		t.Errorf("close particles should be pushed apart, got v0=%v v1=%v", ps[0].Vel, ps[1].Vel)
	}
}

func TestAccumulateForces_EachPairOnce(t *testing.T) {
	ps := randomPopulation(7, 5)

	want := make([]core.Particle, len(ps))
	copy(want, ps)
	for i := 0; i < len(want); i++ {
		for j := i + 1; j < len(want); j++ {
			da, db := PairImpulse(&want[i], &want[j])
			want[i].Vel = vmath.V2Add(want[i].Vel, da)
			want[j].Vel = vmath.V2Add(want[j].Vel, db)
		}
	}

	AccumulateForces(ps)

	for i := range ps {
		if ps[i].Vel != want[i].Vel {
			t.Errorf("particle %d velocity = %v, want %v", i, ps[i].Vel, want[i].Vel)
		}
		if ps[i].Pos != want[i].Pos {
			t.Errorf("particle %d moved during force accumulation", i)
		}
	}
}

func TestAccumulateForces_ConservesMomentum(t *testing.T) {
	ps := randomPopulation(42, parameter.ParticleCount)

	AccumulateForces(ps)

	var total vmath.Vec2
	var scale float64
	for _, p := range ps {
		m := vmath.V2Scale(p.Vel, p.Mass)
		total = vmath.V2Add(total, m)
		scale += vmath.V2Mag(m)
	}
	if vmath.V2Mag(total) > 1e-9*scale {
		t.Errorf("net momentum = %v, want ~0 (scale %v)", total, scale)
	}
}

func TestAccumulateForces_Deterministic(t *testing.T) {
	a := randomPopulation(99, 32)
	b := randomPopulation(99, 32)

	for i := 0; i < 10; i++ {
		Step(a, parameter.WorldWidth, parameter.WorldHeight)
		Step(b, parameter.WorldWidth, parameter.WorldHeight)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("particle %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func BenchmarkStep(b *testing.B) {
	ps := randomPopulation(1, parameter.ParticleCount)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Step(ps, parameter.WorldWidth, parameter.WorldHeight)
	}
}
