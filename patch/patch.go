package patch

import (
	"errors"

	"github.com/lixenwraith/fractal-synth/core"
	"github.com/lixenwraith/fractal-synth/effect"
	"github.com/lixenwraith/fractal-synth/generator"
	"github.com/lixenwraith/fractal-synth/modulator"
)

// ErrEffectIndex signals a structural edit at an out-of-range position.
// This fails fast instead of clamping so patch-authoring tools can't
// silently edit the wrong slot.
var ErrEffectIndex = errors.New("patch: effect index out of range")

// genCache pairs a computed pixel field with the generator identity and
// the snapshot of relevant parameters it was computed from. It is replaced
// wholesale on invalidation, never merged, and holds exactly one entry.
type genCache struct {
	generator string
	snapshot  map[string]float64
	field     []core.Sample
}

// valid reports whether the cached field can serve a frame with the given
// generator and relevant-key projection. Keying on the generator name as
// well as the projection means swapping generators never reuses a stale
// field, even when both variants declare identical relevant keys.
func (c *genCache) valid(genName string, proj map[string]float64) bool {
	return c != nil && c.generator == genName && core.ProjectionEqual(c.snapshot, proj)
}

// Patch binds one generator, an ordered effect chain, an ordered modulator
// list, the live parameter set, and the generator-output cache. A patch is
// a value: every mutator derives a new Patch, which keeps presets and undo
// trivially shareable. Stateful components (particle systems, random
// walks) are held by pointer and shared between derived patches.
type Patch struct {
	Generator  generator.Generator
	Effects    []effect.Effect
	Modulators []modulator.Modulator
	Params     core.Params

	cache *genCache
}

// New creates a patch with an empty effect chain and modulator list
func New(gen generator.Generator, params core.Params) Patch {
	return Patch{Generator: gen, Params: params}
}

// Frame is one frame's output: the final pixel field after the effect
// chain, and the parameter snapshot it was rendered under (including any
// side channels written by effects).
type Frame struct {
	Samples []core.Sample
	Params  core.Params
}

// ProcessFrame runs one evaluation pass:
//
//  1. fold the modulator list over the parameter set (only mod-matrix
//     entries apply; bare scalars are inert),
//  2. reuse or recompute the generator field based on the relevant-key
//     projection,
//  3. thread the field through the effect chain in order,
//  4. return the frame plus the patch carrying the new cache and params.
func (p Patch) ProcessFrame() (Patch, Frame) {
	params := p.Params
	for _, m := range p.Modulators {
		if a, ok := m.(modulator.ParamApplier); ok {
			params = a.Apply(params)
		}
	}

	cache := p.cache
	proj := params.Project(p.Generator.RelevantKeys())
	if !cache.valid(p.Generator.Name(), proj) {
		cache = &genCache{
			generator: p.Generator.Name(),
			snapshot:  proj,
			field:     p.Generator.Generate(params),
		}
	}

	// Effects never mutate their input, so the cached field can be handed
	// to the chain directly.
	samples := cache.field
	for _, e := range p.Effects {
		samples, params = e.Process(samples, params)
	}

	next := p
	next.Params = params
	next.cache = cache
	return next, Frame{Samples: samples, Params: params}
}

// MergeParams derives a patch with parameter overrides applied (per-frame
// driver input: time, cursor, click-to-zoom results)
func (p Patch) MergeParams(overrides map[string]float64) Patch {
	next := p
	next.Params = p.Params.Merge(overrides)
	return next
}

// WithGenerator swaps the generator. The cache is keyed by generator
// identity, so the swap alone is enough to force a fresh field.
func (p Patch) WithGenerator(gen generator.Generator) Patch {
	next := p
	next.Generator = gen
	return next
}

// WithEffect appends an effect to the chain
func (p Patch) WithEffect(e effect.Effect) Patch {
	next := p
	next.Effects = appendEffects(p.Effects, e)
	return next
}

// WithModulator appends a modulator
func (p Patch) WithModulator(m modulator.Modulator) Patch {
	next := p
	mods := make([]modulator.Modulator, len(p.Modulators), len(p.Modulators)+1)
	copy(mods, p.Modulators)
	next.Modulators = append(mods, m)
	return next
}

// RemoveEffect deletes the effect at index i
func (p Patch) RemoveEffect(i int) (Patch, error) {
	if i < 0 || i >= len(p.Effects) {
		return p, ErrEffectIndex
	}
	next := p
	effects := make([]effect.Effect, 0, len(p.Effects)-1)
	effects = append(effects, p.Effects[:i]...)
	effects = append(effects, p.Effects[i+1:]...)
	next.Effects = effects
	return next, nil
}

// ReplaceEffect substitutes the effect at index i
func (p Patch) ReplaceEffect(i int, e effect.Effect) (Patch, error) {
	if i < 0 || i >= len(p.Effects) {
		return p, ErrEffectIndex
	}
	next := p
	effects := make([]effect.Effect, len(p.Effects))
	copy(effects, p.Effects)
	effects[i] = e
	next.Effects = effects
	return next, nil
}

func appendEffects(effects []effect.Effect, e effect.Effect) []effect.Effect {
	out := make([]effect.Effect, len(effects), len(effects)+1)
	copy(out, effects)
	return append(out, e)
}
