package audio

import (
	"os"
	"strconv"
)

// Environment overrides
const (
	EnvAudioEnabled = "PARTICLES_AUDIO_ENABLED"
	EnvMasterVolume = "PARTICLES_MASTER_VOLUME"
)

// Config controls the audio cues
type Config struct {
	Enabled bool
	// MasterVolume is linear gain in [0, 1]
	MasterVolume float64
}

// DefaultConfig returns audio enabled at 60% volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.6,
	}
}

// LoadConfig applies environment overrides on top of DefaultConfig
// Malformed values are ignored
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}

	return cfg
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
