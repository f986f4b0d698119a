package audio

import (
	"os"
	"strconv"
	"time"
)

// Config describes the bell tone
type Config struct {
	Enabled    bool
	Volume     float64 // 0.0-1.0
	Frequency  float64 // Hz
	Duration   time.Duration
	Wave       WaveType
	SampleRate int
}

// DefaultConfig is a quiet 880 Hz blip
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     0.4,
		Frequency:  880,
		Duration:   80 * time.Millisecond,
		Wave:       WaveSine,
		SampleRate: 44100,
	}
}

// LoadConfig overlays CELLTERM_BELL_* environment variables on DefaultConfig
func LoadConfig() Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("CELLTERM_BELL_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volume is given as 0-100
	if volume := os.Getenv("CELLTERM_BELL_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if freq := os.Getenv("CELLTERM_BELL_FREQUENCY"); freq != "" {
		if val, err := strconv.ParseFloat(freq, 64); err == nil && val > 0 {
			cfg.Frequency = val
		}
	}

	if dur := os.Getenv("CELLTERM_BELL_DURATION"); dur != "" {
		if val, err := time.ParseDuration(dur); err == nil && val > 0 {
			cfg.Duration = val
		}
	}

	if wave := os.Getenv("CELLTERM_BELL_WAVE"); wave != "" {
		if val, ok := ParseWave(wave); ok {
			cfg.Wave = val
		}
	}

	if sampleRate := os.Getenv("CELLTERM_BELL_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
