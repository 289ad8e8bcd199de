package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/particle-field/parameter"
)

const (
	sampleRate = beep.SampleRate(48000)

	impactFreq     = 880.0
	impactDuration = 40 * time.Millisecond

	lagFreq     = 110.0
	lagDuration = 150 * time.Millisecond
)

// SoundManager plays short cues for simulation events: wall impacts and lag frames
// Every method is a no-op until Initialize succeeds, so callers never need to check
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	volume      float64

	now        func() time.Time
	lastImpact time.Time
	lastLag    time.Time
}

// NewSoundManager creates a sound manager at the given master volume (linear, 0..1)
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: clamp01(volume),
		now:    time.Now,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops all queued sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close; an empty mixer is silent
	sm.initialized = false
}

// SetMuted suppresses all cues without releasing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Active reports whether cues will be audible
func (sm *SoundManager) Active() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted && sm.volume > 0
}

// PlayImpact plays a click scaled by how many particles touched a wall this tick
// Rate limited by parameter.ImpactCooldown
func (sm *SoundManager) PlayImpact(contacts int) {
	if contacts <= 0 {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	now := sm.now()
	if now.Sub(sm.lastImpact) < parameter.ImpactCooldown {
		return
	}
	sm.lastImpact = now

	tone, err := generators.SineTone(sampleRate, impactFreq)
	if err != nil {
		return
	}
	click := beep.Take(sampleRate.N(impactDuration), NewDecayEnvelope(sampleRate, tone, 60))
	sm.add(click, sm.volume*ImpactLevel(contacts))
}

// PlayLag plays a low buzz when a frame overran its budget
// Rate limited by parameter.LagCooldown
func (sm *SoundManager) PlayLag() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	now := sm.now()
	if now.Sub(sm.lastLag) < parameter.LagCooldown {
		return
	}
	sm.lastLag = now

	buzz := beep.Take(sampleRate.N(lagDuration), NewBuzzGenerator(sampleRate, lagFreq))
	sm.add(buzz, sm.volume*0.5)
}

// add queues s at linear gain, caller holds sm.mu
func (sm *SoundManager) add(s beep.Streamer, gain float64) {
	vol, silent := GainToVolume(gain)
	if silent {
		return
	}
	speaker.Lock()
	sm.mixer.Add(&effects.Volume{Streamer: s, Base: 2, Volume: vol})
	speaker.Unlock()
}

// ImpactLevel maps a contact count onto linear gain [0.25, 1]
func ImpactLevel(contacts int) float64 {
	if contacts <= 0 {
		return 0
	}
	if contacts > parameter.ImpactContactsFull {
		contacts = parameter.ImpactContactsFull
	}
	return 0.25 + 0.75*float64(contacts)/float64(parameter.ImpactContactsFull)
}

// GainToVolume converts linear gain to an effects.Volume exponent with base 2
func GainToVolume(gain float64) (volume float64, silent bool) {
	if gain <= 0 {
		return 0, true
	}
	return math.Log2(gain), false
}
