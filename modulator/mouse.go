package modulator

import "github.com/lixenwraith/fractal-synth/core"

// Axis selects which cursor coordinate a Mouse modulator tracks
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Mouse maps the cursor position along one axis, normalized by the canvas
// extent, into [-1, 1] through a configurable scale and offset.
type Mouse struct {
	Axis   Axis
	Scale  float64
	Offset float64
}

func (Mouse) Name() string { return "mouse" }

func (m Mouse) Value(p core.Params) float64 {
	var pos, extent float64
	if m.Axis == AxisY {
		pos, extent = p.Get(core.KeyMouseY), p.Get(core.KeyHeight)
	} else {
		pos, extent = p.Get(core.KeyMouseX), p.Get(core.KeyWidth)
	}
	if extent <= 0 {
		return 0
	}
	v := (pos/extent*2-1)*m.Scale + m.Offset
	return clamp(v, -1, 1)
}
