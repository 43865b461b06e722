package core

// Sample is one cell of generator output: pixel coordinates, the raw
// escape-time or noise value, and the ceiling used to normalize it.
// Effects annotate samples as the field moves down the chain: the color
// mapper fills R/G/B, echo and particles attach an alpha, particles attach
// a size. Presence flags distinguish "not set" from zero so downstream
// effects can pass unannotated samples through untouched.
type Sample struct {
	X, Y int

	Value    float64
	MaxValue float64

	R, G, B  uint8
	HasColor bool

	// Alpha keeps the scale its producer used: echo layers write [0,1],
	// the particle system writes [0,255]. The render boundary normalizes.
	Alpha    float64
	HasAlpha bool

	Size    int
	HasSize bool
}

// Normalized returns Value/MaxValue clamped to [0,1].
func (s Sample) Normalized() float64 {
	if s.MaxValue <= 0 {
		return 0
	}
	n := s.Value / s.MaxValue
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// Interior reports whether the sample never escaped (value at the cap).
func (s Sample) Interior() bool {
	return s.Value >= s.MaxValue
}
