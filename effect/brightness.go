package effect

import "github.com/lixenwraith/fractal-synth/core"

// BrightnessContrast applies c' = clamp((c + brightness) * contrast) per
// channel. Brightness can be read from a parameter key each frame for
// LFO-driven pulsing. Samples without color pass through unchanged.
type BrightnessContrast struct {
	// Brightness is the static channel offset; when BrightnessKey is set
	// the offset is read from the parameter set instead
	Brightness    float64
	BrightnessKey string

	Contrast float64
}

func (BrightnessContrast) Name() string { return "brightness_contrast" }

func (e BrightnessContrast) Process(samples []core.Sample, p core.Params) ([]core.Sample, core.Params) {
	brightness := e.Brightness
	if e.BrightnessKey != "" {
		brightness = p.Get(e.BrightnessKey)
	}

	out := cloneSamples(samples)
	for i := range out {
		if !out[i].HasColor {
			continue
		}
		out[i].R = core.ClampChannel((float64(out[i].R) + brightness) * e.Contrast)
		out[i].G = core.ClampChannel((float64(out[i].G) + brightness) * e.Contrast)
		out[i].B = core.ClampChannel((float64(out[i].B) + brightness) * e.Contrast)
	}
	return out, p
}
