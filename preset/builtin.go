package preset

import (
	"github.com/lixenwraith/fractal-synth/core"
	"github.com/lixenwraith/fractal-synth/effect"
	"github.com/lixenwraith/fractal-synth/generator"
	"github.com/lixenwraith/fractal-synth/modulator"
	"github.com/lixenwraith/fractal-synth/patch"
)

func init() {
	Register("classic", classic)
	Register("julia-swirl", juliaSwirl)
	Register("trippy", trippy)
	Register("ship-trails", shipTrails)
	Register("noise-pulse", noisePulse)
}

// classic is the plain Mandelbrot view with the cosine palette
func classic() patch.Patch {
	return patch.New(generator.Mandelbrot{}, baseParams(nil)).
		WithEffect(effect.NewColorMap(effect.SchemeClassic))
}

// juliaSwirl is a Julia set at a classic dendrite constant with an LFO
// slowly rotating the palette channels
func juliaSwirl() patch.Patch {
	return patch.New(generator.Julia{}, baseParams(map[string]float64{
		core.KeyCenterX: 0,
		core.KeyCenterY: 0,
		core.KeyJuliaCX: -0.7,
		core.KeyJuliaCY: 0.27015,
		core.KeyMaxIter: 150,
	})).
		WithEffect(effect.NewColorMap(effect.SchemePsychedelic)).
		WithEffect(effect.HueShift{AmountKey: "hue_amount"}).
		WithModulator(modulator.Matrix{Routes: []modulator.Route{
			{
				Source: modulator.LFO{Waveform: modulator.WaveSine, Frequency: 0.05},
				Target: "hue_amount",
				Min:    0,
				Max:    255,
			},
		}})
}

// trippy layers a breathing ripple, echo trails, and spark particles over
// an ocean-colored Mandelbrot
func trippy() patch.Patch {
	return patch.New(generator.Mandelbrot{}, baseParams(nil)).
		WithEffect(effect.NewColorMap(effect.SchemeOcean)).
		WithEffect(effect.Ripple{Frequency: 0.3, Speed: 2, AmplitudeKey: "ripple_amp"}).
		WithEffect(effect.Echo{Layers: 2, OffsetX: 2, OffsetY: 1, Decay: 1.5}).
		WithEffect(effect.NewParticleSystem(0.9, 0.05)).
		WithModulator(modulator.Matrix{Routes: []modulator.Route{
			{
				Source: modulator.LFO{Waveform: modulator.WaveSine, Frequency: 0.2},
				Target: "ripple_amp",
				Min:    0,
				Max:    3,
			},
		}})
}

// shipTrails is the burning ship fractal with fire colors smeared by
// motion blur
func shipTrails() patch.Patch {
	return patch.New(generator.BurningShip{}, baseParams(map[string]float64{
		core.KeyCenterX: -1.75,
		core.KeyCenterY: -0.035,
		core.KeyZoom:    30,
	})).
		WithEffect(effect.NewColorMap(effect.SchemeFire)).
		WithEffect(effect.BrightnessContrast{BrightnessKey: "bass_pulse", Contrast: 1.1}).
		WithEffect(effect.MotionBlur{Alpha: 0.75}).
		WithModulator(modulator.Matrix{Routes: []modulator.Route{
			{
				// Source is left nil; the engine binds its analyzer at load
				Source: modulator.Audio{LowHz: 30, HighHz: 250, Sensitivity: 2},
				Target: "bass_pulse",
				Min:    -20,
				Max:    60,
			},
		}})
}

// noisePulse is the drifting noise field with an LFO pumping brightness
func noisePulse() patch.Patch {
	return patch.New(generator.NewNoiseField(), baseParams(nil)).
		WithEffect(effect.NewColorMap(effect.SchemeFire)).
		WithEffect(effect.BrightnessContrast{BrightnessKey: "pulse", Contrast: 1.2}).
		WithModulator(modulator.Matrix{Routes: []modulator.Route{
			{
				Source: modulator.LFO{Waveform: modulator.WaveTriangle, Frequency: 0.5},
				Target: "pulse",
				Min:    -40,
				Max:    40,
			},
		}})
}
