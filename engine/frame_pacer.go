package engine

import (
	"log"
	"time"
)

// FrameReport describes one paced frame
type FrameReport struct {
	Frame      uint64
	Elapsed    time.Duration
	Slept      time.Duration
	OverBudget bool
}

// FramePacer implements measure/remainder/sleep frame pacing
// Overruns are reported and the next frame starts immediately: no catch-up, no skipping
type FramePacer struct {
	clock    TimeSource
	interval time.Duration

	start     time.Time
	frames    uint64
	lagFrames uint64
	lastFrame time.Duration
}

// NewFramePacer creates a pacer targeting fps frames per second
// Non-positive fps disables sleeping; every frame is then within budget
func NewFramePacer(fps int, clock TimeSource) *FramePacer {
	var interval time.Duration
	if fps > 0 {
		interval = time.Second / time.Duration(fps)
	}
	return &FramePacer{
		clock:    clock,
		interval: interval,
	}
}

// Interval returns the per-frame budget
func (p *FramePacer) Interval() time.Duration {
	return p.interval
}

// Begin marks the start of frame processing
func (p *FramePacer) Begin() {
	p.start = p.clock.Now()
}

// End measures the frame and sleeps the remainder of the budget
func (p *FramePacer) End() FrameReport {
	r := p.measure()
	if !r.OverBudget && p.interval > 0 {
		r.Slept = p.interval - r.Elapsed
		p.clock.Sleep(r.Slept)
	}
	p.lastFrame = r.Elapsed + r.Slept
	return r
}

// Observe measures the frame without sleeping, for hosts that pace frames themselves
func (p *FramePacer) Observe() FrameReport {
	r := p.measure()
	p.lastFrame = r.Elapsed
	return r
}

func (p *FramePacer) measure() FrameReport {
	elapsed := p.clock.Now().Sub(p.start)
	p.frames++

	r := FrameReport{
		Frame:   p.frames,
		Elapsed: elapsed,
	}

	if p.interval > 0 && p.interval-elapsed <= 0 {
		r.OverBudget = true
		p.lagFrames++
		log.Printf("lag frame %d: %v over %v budget", p.frames, elapsed, p.interval)
	}
	return r
}

// Frames returns the number of completed frames
func (p *FramePacer) Frames() uint64 {
	return p.frames
}

// LagFrames returns the number of frames that overran the budget
func (p *FramePacer) LagFrames() uint64 {
	return p.lagFrames
}

// FPS estimates the instantaneous frame rate from the last full frame duration
func (p *FramePacer) FPS() float64 {
	if p.lastFrame <= 0 {
		return 0
	}
	return float64(time.Second) / float64(p.lastFrame)
}
