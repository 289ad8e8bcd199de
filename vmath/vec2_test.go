package vmath

import (
	"math"
	"testing"
)

const epsilon = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func TestV2Arithmetic(t *testing.T) {
	a := Vec2{3, -4}
	b := Vec2{1, 2}

	if got := V2Add(a, b); got != (Vec2{4, -2}) {
		t.Errorf("V2Add = %v, want {4 -2}", got)
	}
	if got := V2Sub(a, b); got != (Vec2{2, -6}) {
		t.Errorf("V2Sub = %v, want {2 -6}", got)
	}
	if got := V2Scale(a, 0.5); got != (Vec2{1.5, -2}) {
		t.Errorf("V2Scale = %v, want {1.5 -2}", got)
	}
	if got := V2Dot(a, b); got != -5 {
		t.Errorf("V2Dot = %v, want -5", got)
	}
	if got := V2Mag(a); got != 5 {
		t.Errorf("V2Mag = %v, want 5", got)
	}
}

func TestV2Distance(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float64
	}{
		{"same point", Vec2{7, 7}, Vec2{7, 7}, 0},
		{"horizontal", Vec2{0, 0}, Vec2{100, 0}, 100},
		{"pythagorean", Vec2{1, 1}, Vec2{4, 5}, 5},
		{"sub-pixel", Vec2{0, 0}, Vec2{0.3, 0.4}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := V2Distance(tt.a, tt.b); !almostEqual(got, tt.want) {
				t.Errorf("V2Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := V2Distance(tt.b, tt.a); !almostEqual(got, tt.want) {
				t.Errorf("V2Distance not symmetric: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestV2Normalize(t *testing.T) {
	if got := V2Normalize(Vec2{}); got != (Vec2{}) {
		t.Errorf("V2Normalize(zero) = %v, want zero vector", got)
	}

	for _, v := range []Vec2{{3, 4}, {-0.001, 0}, {1e6, -1e6}, {0.3, 0.4}} {
		n := V2Normalize(v)
		if !almostEqual(V2Mag(n), 1) {
			t.Errorf("|V2Normalize(%v)| = %v, want 1", v, V2Mag(n))
		}
		if V2Dot(n, v) <= 0 {
			t.Errorf("V2Normalize(%v) = %v points away from input", v, n)
		}
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Error("1.5 should be finite")
	}
	for _, f := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		if IsFinite(f) {
			t.Errorf("IsFinite(%v) = true, want false", f)
		}
	}
	if V2IsFinite(Vec2{0, math.NaN()}) {
		t.Error("V2IsFinite should reject NaN component")
	}
}
