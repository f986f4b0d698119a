package audio

import (
	"math"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects the bell timbre
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

var waveNames = [...]string{
	WaveSine:   "sine",
	WaveSquare: "square",
	WaveSaw:    "saw",
}

func (w WaveType) String() string {
	if w < 0 || int(w) >= len(waveNames) {
		return "sine"
	}
	return waveNames[w]
}

// ParseWave resolves sine, square or saw
func ParseWave(s string) (WaveType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range waveNames {
		if name == s {
			return WaveType(i), true
		}
	}
	return WaveSine, false
}

// at returns the amplitude in [-1, 1] at phase in [0, 1)
func (w WaveType) at(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// tone is a fixed-length periodic waveform, identical on both channels
type tone struct {
	wave  WaveType
	step  float64
	phase float64
	left  int
}

func newTone(wave WaveType, freq float64, samples int, rate beep.SampleRate) *tone {
	return &tone{
		wave: wave,
		step: freq / float64(rate),
		left: samples,
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.left <= 0 {
		return 0, false
	}
	n := min(len(samples), t.left)
	for i := range samples[:n] {
		v := t.wave.at(t.phase)
		samples[i] = [2]float64{v, v}
		_, t.phase = math.Modf(t.phase + t.step)
	}
	t.left -= n
	return n, true
}

func (t *tone) Err() error { return nil }

// fade ramps the wrapped stream up over the first rampIn samples and down
// over the last rampOut samples of total. Gain never exceeds 1.
type fade struct {
	s       beep.Streamer
	pos     int
	total   int
	rampIn  int
	rampOut int
}

func newFade(s beep.Streamer, total, rampIn, rampOut int) *fade {
	return &fade{s: s, total: total, rampIn: rampIn, rampOut: rampOut}
}

func (f *fade) gain() float64 {
	g := 1.0
	if f.pos < f.rampIn {
		g = float64(f.pos) / float64(f.rampIn)
	}
	if rem := f.total - f.pos; rem < f.rampOut {
		g = min(g, float64(max(rem, 0))/float64(f.rampOut))
	}
	return g
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.s.Stream(samples)
	for i := range samples[:n] {
		g := f.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

// scale applies a linear volume in [0, 1]; effects.Gain multiplies by 1+Gain
func scale(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: volume - 1}
}
