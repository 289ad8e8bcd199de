package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// DecayEnvelope applies an exponential fade exp(-rate*t) to a wrapped streamer
type DecayEnvelope struct {
	sr   beep.SampleRate
	src  beep.Streamer
	rate float64
	pos  int
}

// NewDecayEnvelope wraps src with a decay of rate per second
func NewDecayEnvelope(sr beep.SampleRate, src beep.Streamer, rate float64) *DecayEnvelope {
	return &DecayEnvelope{sr: sr, src: src, rate: rate}
}

func (e *DecayEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.src.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(e.pos) / float64(e.sr)
		env := math.Exp(-t * e.rate)
		samples[i][0] *= env
		samples[i][1] *= env
		e.pos++
	}
	return n, ok
}

func (e *DecayEnvelope) Err() error {
	return e.src.Err()
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Odd harmonics for a harsh edge
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.1 * math.Sin(2*math.Pi*g.freq*3*t)
		sample += 0.06 * math.Sin(2*math.Pi*g.freq*5*t)

		// 20ms fade-in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.4

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
