package effect

import "github.com/lixenwraith/fractal-synth/core"

// Feedback signals the compositor to blend the new frame against the
// previous composite at the configured ratio. Samples pass through
// untouched.
type Feedback struct {
	Mix float64
}

func (Feedback) Name() string { return "feedback" }

func (e Feedback) Process(samples []core.Sample, p core.Params) ([]core.Sample, core.Params) {
	return samples, p.With(core.KeyFeedbackMix, e.Mix)
}
