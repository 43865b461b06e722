package modulator

import "github.com/lixenwraith/fractal-synth/core"

// Route binds one scalar modulator to a target parameter, linearly
// remapping the scalar's [-1, 1] output so that -1 lands on Min and +1 on
// Max.
type Route struct {
	Source Scalar
	Target string
	Min    float64
	Max    float64
}

// Matrix is the aggregating mod-matrix: the only modulator empowered to
// rewrite the parameter set. Routes apply in order on a parameter set
// threaded left to right, so later routes observe earlier writes.
type Matrix struct {
	Routes []Route
}

func (Matrix) Name() string { return "mod_matrix" }

func (m Matrix) Apply(p core.Params) core.Params {
	for _, r := range m.Routes {
		raw := r.Source.Value(p)
		scaled := r.Min + (raw*0.5+0.5)*(r.Max-r.Min)
		p = p.With(r.Target, scaled)
	}
	return p
}
