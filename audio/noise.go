package audio

import (
	"math/rand"
)

const (
	// noiseStep bounds the white-noise increment per sample
	noiseStep = 0.1

	// noiseLeak pulls the integrator back toward zero so the drift stays
	// bounded without a hard clamp
	noiseLeak = 0.98
)

// NoiseSource is a self-contained leaky-integrator noise streamer. It
// stands in for live capture so audio-reactive presets work out of the
// box with no input device; the spectrum rolls off toward high
// frequencies the way room noise does.
type NoiseSource struct {
	rng   *rand.Rand
	level float64
}

func NewNoiseSource(seed int64) *NoiseSource {
	return &NoiseSource{rng: rand.New(rand.NewSource(seed))}
}

// Stream fills the buffer with identical left/right noise samples. It
// never drains.
func (s *NoiseSource) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		s.level += (s.rng.Float64()*2 - 1) * noiseStep
		s.level *= noiseLeak
		samples[i][0] = s.level
		samples[i][1] = s.level
	}
	return len(samples), true
}

func (s *NoiseSource) Err() error { return nil }
