package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// Bell plays a short tone on the speaker
type Bell struct {
	cfg  Config
	rate beep.SampleRate

	mu          sync.Mutex
	initialized bool
}

// NewBell creates a bell; nothing touches the audio device until Init
func NewBell(cfg Config) *Bell {
	return &Bell{
		cfg:  cfg,
		rate: beep.SampleRate(cfg.SampleRate),
	}
}

// Init opens the speaker. A failure leaves the bell silent.
func (b *Bell) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized || !b.cfg.Enabled {
		return nil
	}

	// 50ms device buffer keeps the blip responsive
	if err := speaker.Init(b.rate, b.rate.N(50*time.Millisecond)); err != nil {
		return errors.Wrap(err, "speaker init")
	}
	b.initialized = true
	return nil
}

// Stream returns a fresh streamer for one ring: the configured wave,
// a short rise, a long decay and the configured volume
func (b *Bell) Stream() beep.Streamer {
	n := b.rate.N(b.cfg.Duration)
	t := newTone(b.cfg.Wave, b.cfg.Frequency, n, b.rate)
	return scale(newFade(t, n, n/10, n/2), b.cfg.Volume)
}

// Ring plays the tone without blocking; no-op when not initialized
func (b *Bell) Ring() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Play(b.Stream())
}

// Close releases the speaker
func (b *Bell) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	b.initialized = false
}
