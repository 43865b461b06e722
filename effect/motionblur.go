package effect

import "github.com/lixenwraith/fractal-synth/core"

// MotionBlur signals the compositor to draw a translucent full-canvas
// overlay before compositing new samples, leaving a fading trail of the
// previous frames. Samples pass through untouched.
type MotionBlur struct {
	Alpha float64
}

func (MotionBlur) Name() string { return "motion_blur" }

func (e MotionBlur) Process(samples []core.Sample, p core.Params) ([]core.Sample, core.Params) {
	return samples, p.With(core.KeyMotionBlurAlpha, e.Alpha)
}
