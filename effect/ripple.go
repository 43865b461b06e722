package effect

import (
	"math"

	"github.com/lixenwraith/fractal-synth/core"
)

// Ripple displaces sample coordinates by a traveling sinusoidal warp.
// The amplitude can be read from a parameter key each frame, which lets a
// mod-matrix route an LFO into the warp depth.
type Ripple struct {
	Frequency float64
	Speed     float64

	// Amplitude is the static warp depth; when AmplitudeKey is set the
	// value is read from the parameter set instead
	Amplitude    float64
	AmplitudeKey string
}

func (Ripple) Name() string { return "ripple" }

func (e Ripple) Process(samples []core.Sample, p core.Params) ([]core.Sample, core.Params) {
	amp := e.Amplitude
	if e.AmplitudeKey != "" {
		amp = p.Get(e.AmplitudeKey)
	}
	t := p.Get(core.KeyTime)

	out := cloneSamples(samples)
	for i := range out {
		x, y := float64(out[i].X), float64(out[i].Y)
		out[i].X += int(math.Round(amp * math.Sin(y*e.Frequency+t*e.Speed)))
		out[i].Y += int(math.Round(amp * math.Sin(x*e.Frequency+t*e.Speed*1.5)))
	}
	return out, p
}
