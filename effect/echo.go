package effect

import (
	"math"

	"github.com/lixenwraith/fractal-synth/core"
)

// Echo appends offset copies of the full sample set, each layer fainter
// than the last. Originals come first and carry no alpha tag, so the
// compositor draws them opaque.
type Echo struct {
	Layers  int
	OffsetX float64
	OffsetY float64
	Decay   float64
}

func (Echo) Name() string { return "echo" }

func (e Echo) Process(samples []core.Sample, p core.Params) ([]core.Sample, core.Params) {
	if e.Layers < 1 {
		return cloneSamples(samples), p
	}

	out := make([]core.Sample, 0, len(samples)*(e.Layers+1))
	out = append(out, samples...)

	for layer := 1; layer <= e.Layers; layer++ {
		dx := int(math.Round(float64(layer) * e.OffsetX))
		dy := int(math.Round(float64(layer) * e.OffsetY))
		alpha := 1.0 / (float64(layer+1) * e.Decay)

		for _, s := range samples {
			s.X += dx
			s.Y += dy
			s.Alpha = alpha
			s.HasAlpha = true
			out = append(out, s)
		}
	}
	return out, p
}
