package effect

import "github.com/lixenwraith/fractal-synth/core"

// Effect transforms a pixel field under the current parameter snapshot.
// Process returns a new sample slice and a (possibly extended) parameter
// set: effects whose semantics are "apply at render time" (motion blur,
// feedback) signal the compositor through parameter side channels instead
// of touching samples.
//
// Implementations must never mutate the input slice — the patch hands the
// cached generator field straight to the first effect, and a write-through
// would corrupt the cache for subsequent frames.
type Effect interface {
	Name() string
	Process(samples []core.Sample, p core.Params) ([]core.Sample, core.Params)
}

// cloneSamples copies a field before annotation
func cloneSamples(samples []core.Sample) []core.Sample {
	out := make([]core.Sample, len(samples))
	copy(out, samples)
	return out
}
