package generator

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/lixenwraith/fractal-synth/core"
)

const (
	// noiseSeed is fixed so the field is a pure function of the declared keys
	noiseSeed = 1

	noiseOctaves     = 4
	noisePersistence = 0.5

	// noiseSpatialFreq and noiseTimeFreq scale pixel and time coordinates
	// into noise space
	noiseSpatialFreq = 0.02
	noiseTimeFreq    = 0.25

	// NoiseMaxValue is the fixed ceiling for noise samples
	NoiseMaxValue = 100.0
)

// NoiseField samples 4-octave fractional Brownian motion at (pixel, time).
// Because time is a relevant key, the field is never cache-stable across
// animation frames.
type NoiseField struct {
	noise opensimplex.Noise
}

func NewNoiseField() *NoiseField {
	return &NoiseField{noise: opensimplex.New(noiseSeed)}
}

func (*NoiseField) Name() string { return "noise" }

func (*NoiseField) RelevantKeys() []string {
	return []string{core.KeyWidth, core.KeyHeight, core.KeyTime}
}

func (n *NoiseField) Generate(p core.Params) []core.Sample {
	w := int(p.Get(core.KeyWidth))
	h := int(p.Get(core.KeyHeight))
	if w <= 0 || h <= 0 {
		return nil
	}
	t := p.Get(core.KeyTime) * noiseTimeFreq

	samples := make([]core.Sample, w*h)
	parallelRows(h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := samples[y*w : (y+1)*w]
			for x := 0; x < w; x++ {
				v := n.fbm(float64(x)*noiseSpatialFreq, float64(y)*noiseSpatialFreq, t)
				row[x] = core.Sample{
					X:        x,
					Y:        y,
					Value:    clampValue((v*0.5+0.5)*NoiseMaxValue, 0, NoiseMaxValue),
					MaxValue: NoiseMaxValue,
				}
			}
		}
	})
	return samples
}

// fbm sums octaves with doubling frequency and geometric amplitude decay,
// normalized back to [-1, 1]
func (n *NoiseField) fbm(x, y, t float64) float64 {
	var total, frequency, amplitude, maxAmp float64 = 0, 1, 1, 0
	for i := 0; i < noiseOctaves; i++ {
		total += n.noise.Eval3(x*frequency, y*frequency, t*frequency) * amplitude
		maxAmp += amplitude
		amplitude *= noisePersistence
		frequency *= 2
	}
	return total / maxAmp
}

func clampValue(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
