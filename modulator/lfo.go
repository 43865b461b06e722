package modulator

import (
	"math"

	"github.com/lixenwraith/fractal-synth/core"
)

// Waveform selects the LFO shape
type Waveform int

const (
	WaveSine Waveform = iota
	WaveTriangle
	WaveSquare
	WaveSaw
)

func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveTriangle:
		return "triangle"
	case WaveSquare:
		return "square"
	case WaveSaw:
		return "saw"
	}
	return "unknown"
}

// LFO is a low-frequency oscillator over patch time:
// output = waveform(frequency·time + phase), in [-1, 1].
type LFO struct {
	Waveform  Waveform
	Frequency float64
	Phase     float64
}

func (LFO) Name() string { return "lfo" }

func (l LFO) Value(p core.Params) float64 {
	ph := l.Frequency*p.Get(core.KeyTime) + l.Phase

	switch l.Waveform {
	case WaveTriangle:
		return 4.0*math.Abs(ph-math.Floor(ph+0.5)) - 1.0
	case WaveSquare:
		if math.Sin(2*math.Pi*ph) >= 0 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0*(ph-math.Floor(ph)) - 1.0
	default:
		return math.Sin(2 * math.Pi * ph)
	}
}
