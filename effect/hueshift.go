package effect

import "github.com/lixenwraith/fractal-synth/core"

// HueShift rotates color channels by adding a fixed amount modulo the
// channel range. This is wrap-around channel arithmetic, not a perceptual
// HSV rotation — the wrap at 255 is part of the visual character and is
// pinned by tests. Samples without color pass through unchanged.
type HueShift struct {
	// Amount is the static channel offset; when AmountKey is set the
	// offset is read from the parameter set instead
	Amount    float64
	AmountKey string
}

func (HueShift) Name() string { return "hue_shift" }

func (e HueShift) Process(samples []core.Sample, p core.Params) ([]core.Sample, core.Params) {
	amount := e.Amount
	if e.AmountKey != "" {
		amount = p.Get(e.AmountKey)
	}
	shift := int(amount) % 256
	if shift < 0 {
		shift += 256
	}

	out := cloneSamples(samples)
	for i := range out {
		if !out[i].HasColor {
			continue
		}
		out[i].R = uint8((int(out[i].R) + shift) % 256)
		out[i].G = uint8((int(out[i].G) + shift) % 256)
		out[i].B = uint8((int(out[i].B) + shift) % 256)
	}
	return out, p
}
