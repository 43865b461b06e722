package patch

import (
	"errors"
	"testing"

	"github.com/lixenwraith/fractal-synth/core"
	"github.com/lixenwraith/fractal-synth/effect"
	"github.com/lixenwraith/fractal-synth/generator"
	"github.com/lixenwraith/fractal-synth/modulator"
)

func basePatch() Patch {
	return New(generator.Mandelbrot{}, core.NewParams(map[string]float64{
		core.KeyWidth:   10,
		core.KeyHeight:  10,
		core.KeyCenterX: -0.5,
		core.KeyCenterY: 0,
		core.KeyZoom:    1,
		core.KeyMaxIter: 10,
		core.KeyTime:    0,
	}))
}

// TestCacheReusedWhenIrrelevantKeyChanges verifies two frames that differ
// only in time share the identical stored pixel field
func TestCacheReusedWhenIrrelevantKeyChanges(t *testing.T) {
	p := basePatch()

	p, f1 := p.ProcessFrame()
	p = p.MergeParams(map[string]float64{core.KeyTime: 1.5})
	_, f2 := p.ProcessFrame()

	if len(f1.Samples) == 0 || len(f2.Samples) == 0 {
		t.Fatal("Expected non-empty fields")
	}
	if &f1.Samples[0] != &f2.Samples[0] {
		t.Error("Expected cached field to be reference-equal across time-only change")
	}
}

// TestCacheInvalidatedByRelevantKeyChange verifies changing max_iter forces
// a fresh field
func TestCacheInvalidatedByRelevantKeyChange(t *testing.T) {
	p := basePatch()

	p, f1 := p.ProcessFrame()
	p = p.MergeParams(map[string]float64{core.KeyMaxIter: 50})
	_, f2 := p.ProcessFrame()

	if &f1.Samples[0] == &f2.Samples[0] {
		t.Error("Expected relevant-key change to produce a new field object")
	}
}

// TestCacheInvalidatedByGeneratorSwap verifies swapping generators never
// serves the previous generator's field, even with identical relevant keys
func TestCacheInvalidatedByGeneratorSwap(t *testing.T) {
	p := basePatch()

	p, f1 := p.ProcessFrame()
	p = p.WithGenerator(generator.BurningShip{})
	_, f2 := p.ProcessFrame()

	if &f1.Samples[0] == &f2.Samples[0] {
		t.Error("Expected generator swap to produce a new field object")
	}
}

// TestModMatrixDrivesParams verifies mod-matrix routes land in the frame
// parameter snapshot
func TestModMatrixDrivesParams(t *testing.T) {
	p := basePatch().WithModulator(modulator.Matrix{Routes: []modulator.Route{
		{Source: modulator.LFO{Waveform: modulator.WaveSine, Frequency: 1}, Target: "hue_amount", Min: 0, Max: 255},
	}})
	p = p.MergeParams(map[string]float64{core.KeyTime: 0.25})

	_, f := p.ProcessFrame()
	// sine peaks at 1 → remap to 255
	if got := f.Params.Get("hue_amount"); got < 254.9 || got > 255.1 {
		t.Errorf("Expected matrix to write 255, got %v", got)
	}
}

// TestBareScalarIsInert verifies an unrouted LFO in the modulator list
// rewrites nothing
func TestBareScalarIsInert(t *testing.T) {
	p := basePatch().WithModulator(modulator.LFO{Waveform: modulator.WaveSine, Frequency: 1})
	before := p.Params.Snapshot()

	_, f := p.ProcessFrame()
	if !core.ProjectionEqual(before, f.Params.Snapshot()) {
		t.Error("Expected a bare scalar modulator to leave parameters unchanged")
	}
}

// TestModulatedParamsInvalidateCache verifies a matrix route onto a
// relevant key forces regeneration each time its value changes
func TestModulatedParamsInvalidateCache(t *testing.T) {
	p := basePatch().WithModulator(modulator.Matrix{Routes: []modulator.Route{
		{Source: modulator.LFO{Waveform: modulator.WaveSine, Frequency: 1}, Target: core.KeyZoom, Min: 1, Max: 3},
	}})

	p, f1 := p.ProcessFrame()
	p = p.MergeParams(map[string]float64{core.KeyTime: 0.25})
	_, f2 := p.ProcessFrame()

	if &f1.Samples[0] == &f2.Samples[0] {
		t.Error("Expected modulated zoom change to invalidate the cache")
	}
}

// TestEffectsSeeModulatedParams verifies the chain runs against the
// post-modulation parameter set
func TestEffectsSeeModulatedParams(t *testing.T) {
	p := basePatch().
		WithModulator(modulator.Matrix{Routes: []modulator.Route{
			{Source: constScalar(1), Target: "blur", Min: 0, Max: 0.8},
		}}).
		WithEffect(effect.MotionBlur{Alpha: 0.3})

	_, f := p.ProcessFrame()
	if got := f.Params.Get("blur"); got != 0.8 {
		t.Errorf("Expected modulated param visible to chain, got %v", got)
	}
	if got := f.Params.Get(core.KeyMotionBlurAlpha); got != 0.3 {
		t.Errorf("Expected side channel from effect, got %v", got)
	}
}

// TestStructuralEditsAreValues verifies edits derive new patches without
// touching the original
func TestStructuralEditsAreValues(t *testing.T) {
	p := basePatch()
	q := p.WithEffect(effect.MotionBlur{Alpha: 0.5})

	if len(p.Effects) != 0 {
		t.Errorf("Expected original to stay effect-free, got %d effects", len(p.Effects))
	}
	if len(q.Effects) != 1 {
		t.Errorf("Expected derived patch to carry 1 effect, got %d", len(q.Effects))
	}

	r, err := q.RemoveEffect(0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(r.Effects) != 0 || len(q.Effects) != 1 {
		t.Error("Expected removal to derive a new patch and preserve the source")
	}
}

// TestReplaceEffect verifies in-place substitution at an index
func TestReplaceEffect(t *testing.T) {
	p := basePatch().
		WithEffect(effect.MotionBlur{Alpha: 0.1}).
		WithEffect(effect.Feedback{Mix: 0.2})

	q, err := p.ReplaceEffect(1, effect.MotionBlur{Alpha: 0.9})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if q.Effects[1].Name() != "motion_blur" {
		t.Errorf("Expected replacement at index 1, got %s", q.Effects[1].Name())
	}
	if p.Effects[1].Name() != "feedback" {
		t.Error("Expected source patch chain unchanged")
	}
}

// TestEffectIndexErrors verifies out-of-range edits fail with the sentinel
func TestEffectIndexErrors(t *testing.T) {
	p := basePatch().WithEffect(effect.MotionBlur{Alpha: 0.1})

	if _, err := p.RemoveEffect(5); !errors.Is(err, ErrEffectIndex) {
		t.Errorf("Expected ErrEffectIndex, got %v", err)
	}
	if _, err := p.RemoveEffect(-1); !errors.Is(err, ErrEffectIndex) {
		t.Errorf("Expected ErrEffectIndex, got %v", err)
	}
	if _, err := p.ReplaceEffect(1, effect.Feedback{Mix: 0.5}); !errors.Is(err, ErrEffectIndex) {
		t.Errorf("Expected ErrEffectIndex, got %v", err)
	}
}

// TestEndToEndClassicChain runs a full frame through colormap and echo
func TestEndToEndClassicChain(t *testing.T) {
	p := basePatch().
		WithEffect(effect.NewColorMap(effect.SchemeClassic)).
		WithEffect(effect.Echo{Layers: 2, OffsetX: 1, OffsetY: 1, Decay: 2})

	_, f := p.ProcessFrame()

	if want := 10 * 10 * 3; len(f.Samples) != want {
		t.Errorf("Expected %d samples after 2 echo layers, got %d", want, len(f.Samples))
	}
	for i, s := range f.Samples[:100] {
		if !s.HasColor {
			t.Fatalf("Expected colored sample at %d", i)
		}
	}
}

// TestCacheSurvivesEffectChain verifies effects never corrupt the cached
// field across frames
func TestCacheSurvivesEffectChain(t *testing.T) {
	p := basePatch().WithEffect(effect.Ripple{Frequency: 0.5, Speed: 1, Amplitude: 3})

	var first []core.Sample
	p, f := p.ProcessFrame()
	first = append(first, f.Samples...)

	p = p.MergeParams(map[string]float64{core.KeyTime: 2})
	p, _ = p.ProcessFrame()
	p = p.MergeParams(map[string]float64{core.KeyTime: 0})
	_, f3 := p.ProcessFrame()

	for i := range first {
		if first[i] != f3.Samples[i] {
			t.Fatalf("Expected identical output for identical params at sample %d", i)
		}
	}
}

type constScalar float64

func (constScalar) Name() string                { return "const" }
func (c constScalar) Value(core.Params) float64 { return float64(c) }
