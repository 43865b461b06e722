package effect

import (
	"math/rand"

	"github.com/lixenwraith/fractal-synth/core"
)

const (
	// ParticleCap is the hard ceiling on live particles; the oldest are
	// trimmed first when exceeded
	ParticleCap = 500

	// particleLifeDecay is subtracted from each particle's life per frame
	particleLifeDecay = 0.02

	// particleMaxSpeed bounds the random spawn velocity per axis (cells/frame)
	particleMaxSpeed = 1.5

	// particleSize is the render footprint attached to emitted samples
	particleSize = 2
)

// particle is cross-frame state owned by the effect instance, not smuggled
// through the parameter set — keeping the generator cache projection
// well-defined.
type particle struct {
	x, y     float64
	vx, vy   float64
	life     float64
	color    core.RGB
	hasColor bool
}

// ParticleSystem spawns particles from bright samples and integrates them
// across frames, emitting them as extra samples with a life-scaled alpha.
// Unlike the other effects it carries state between frames, so a patch
// holds it by pointer.
type ParticleSystem struct {
	// Threshold is the fraction of max_value a sample must exceed to
	// become a spawn site
	Threshold float64

	// SpawnRate is the spawn probability per qualifying sample per frame
	SpawnRate float64

	rng       *rand.Rand
	particles []particle
}

func NewParticleSystem(threshold, spawnRate float64) *ParticleSystem {
	return &ParticleSystem{
		Threshold: threshold,
		SpawnRate: spawnRate,
		rng:       rand.New(rand.NewSource(1)),
	}
}

func (*ParticleSystem) Name() string { return "particles" }

// Live returns the current particle count
func (e *ParticleSystem) Live() int { return len(e.particles) }

func (e *ParticleSystem) Process(samples []core.Sample, p core.Params) ([]core.Sample, core.Params) {
	// Spawn from bright samples
	for _, s := range samples {
		if s.Value <= e.Threshold*s.MaxValue {
			continue
		}
		if e.rng.Float64() >= e.SpawnRate {
			continue
		}
		e.particles = append(e.particles, particle{
			x:        float64(s.X),
			y:        float64(s.Y),
			vx:       (e.rng.Float64()*2 - 1) * particleMaxSpeed,
			vy:       (e.rng.Float64()*2 - 1) * particleMaxSpeed,
			life:     1.0,
			color:    core.RGB{R: s.R, G: s.G, B: s.B},
			hasColor: s.HasColor,
		})
	}

	// Integrate, decay, cull
	alive := e.particles[:0]
	for _, pt := range e.particles {
		pt.x += pt.vx
		pt.y += pt.vy
		pt.life -= particleLifeDecay
		if pt.life > 0 {
			alive = append(alive, pt)
		}
	}
	e.particles = alive

	// Oldest-trim to the cap
	if len(e.particles) > ParticleCap {
		e.particles = append(e.particles[:0], e.particles[len(e.particles)-ParticleCap:]...)
	}

	// Emit particles as extra samples after the originals
	out := make([]core.Sample, 0, len(samples)+len(e.particles))
	out = append(out, samples...)
	for _, pt := range e.particles {
		s := core.Sample{
			X:        int(pt.x),
			Y:        int(pt.y),
			Value:    pt.life,
			MaxValue: 1.0,
			Alpha:    255 * pt.life,
			HasAlpha: true,
			Size:     particleSize,
			HasSize:  true,
		}
		if pt.hasColor {
			s.R, s.G, s.B = pt.color.R, pt.color.G, pt.color.B
		} else {
			// Uncolored spawn sites emit warm white
			s.R, s.G, s.B = 255, 230, 180
		}
		s.HasColor = true
		out = append(out, s)
	}
	return out, p
}
