package modulator

import "github.com/lixenwraith/fractal-synth/core"

// Modulator is anything placeable in a patch's modulator list.
type Modulator interface {
	Name() string
}

// Scalar produces a bounded control value in [-1, 1] from the current
// parameter snapshot. Scalars are inert at a patch's top level: they only
// take effect when routed through a Matrix mapping. This avoids having to
// define what a bare scalar "applied to a whole parameter set" would mean.
type Scalar interface {
	Modulator
	Value(p core.Params) float64
}

// ParamApplier rewrites the parameter set. The mod-matrix is the only
// variant with this capability; the patch applies exactly the modulators
// that implement it.
type ParamApplier interface {
	Modulator
	Apply(p core.Params) core.Params
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
