package modulator

import (
	"math/rand"

	"github.com/lixenwraith/fractal-synth/core"
)

// RandomWalk is an exponentially-smoothed bounded drift:
// next = smoothing·prev + (1-smoothing)·(prev + uniform_step).
// It carries its position between evaluations, so a patch holds it by
// pointer.
type RandomWalk struct {
	Smoothing float64
	StepSize  float64

	prev float64
	rng  *rand.Rand
}

func NewRandomWalk(smoothing, stepSize float64, seed int64) *RandomWalk {
	return &RandomWalk{
		Smoothing: smoothing,
		StepSize:  stepSize,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

func (*RandomWalk) Name() string { return "random_walk" }

func (w *RandomWalk) Value(core.Params) float64 {
	step := (w.rng.Float64()*2 - 1) * w.StepSize
	next := w.Smoothing*w.prev + (1-w.Smoothing)*(w.prev+step)
	w.prev = clamp(next, -1, 1)
	return w.prev
}
