package effect

import (
	"math"

	"github.com/lixenwraith/fractal-synth/core"
)

// Scheme selects a color palette for the color mapper
type Scheme int

const (
	SchemeClassic Scheme = iota
	SchemeFire
	SchemeOcean
	SchemePsychedelic
)

func (s Scheme) String() string {
	switch s {
	case SchemeClassic:
		return "classic"
	case SchemeFire:
		return "fire"
	case SchemeOcean:
		return "ocean"
	case SchemePsychedelic:
		return "psychedelic"
	}
	return "unknown"
}

// Interior (non-escaping) points render as a fixed near-black sentinel so
// the set body stays dark regardless of palette phase.
var sentinelColors = map[Scheme]core.RGB{
	SchemeClassic:     {R: 5, G: 5, B: 10},
	SchemeFire:        {R: 10, G: 0, B: 0},
	SchemeOcean:       {R: 0, G: 5, B: 15},
	SchemePsychedelic: {R: 5, G: 0, B: 10},
}

// ColorMap maps each sample's normalized value to RGB via a named palette
type ColorMap struct {
	Scheme Scheme
}

func NewColorMap(scheme Scheme) ColorMap { return ColorMap{Scheme: scheme} }

func (ColorMap) Name() string { return "color_map" }

func (e ColorMap) Process(samples []core.Sample, p core.Params) ([]core.Sample, core.Params) {
	out := cloneSamples(samples)
	for i := range out {
		c := e.mapColor(out[i])
		out[i].R, out[i].G, out[i].B = c.R, c.G, c.B
		out[i].HasColor = true
	}
	return out, p
}

func (e ColorMap) mapColor(s core.Sample) core.RGB {
	if s.Interior() {
		return sentinelColors[e.Scheme]
	}
	t := s.Normalized()

	switch e.Scheme {
	case SchemeFire:
		// Black → red → yellow → white ramp
		return core.RGB{
			R: core.ClampChannel(t * 3 * 255),
			G: core.ClampChannel((t - 1.0/3.0) * 3 * 255),
			B: core.ClampChannel((t - 2.0/3.0) * 3 * 255),
		}
	case SchemeOcean:
		return core.RGB{
			R: core.ClampChannel(40 * t),
			G: core.ClampChannel(128 * (0.5 + 0.5*math.Sin(2*math.Pi*t))),
			B: core.ClampChannel(80 + 175*t),
		}
	case SchemePsychedelic:
		// Three independently-phased rectified sines
		return core.RGB{
			R: core.ClampChannel(255 * math.Abs(math.Sin(t*10))),
			G: core.ClampChannel(255 * math.Abs(math.Sin(t*10+2.094))),
			B: core.ClampChannel(255 * math.Abs(math.Sin(t*10+4.188))),
		}
	default:
		// Classic: cosine-phase RGB, 120° apart
		ph := 2 * math.Pi * t
		return core.RGB{
			R: core.ClampChannel(255 * (0.5 + 0.5*math.Cos(ph))),
			G: core.ClampChannel(255 * (0.5 + 0.5*math.Cos(ph+2.094))),
			B: core.ClampChannel(255 * (0.5 + 0.5*math.Cos(ph+4.188))),
		}
	}
}
