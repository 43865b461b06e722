package generator

import "github.com/lixenwraith/fractal-synth/core"

// Mandelbrot iterates z ← z² + c from z = 0, where c is the plane
// coordinate of each pixel.
type Mandelbrot struct{}

func NewMandelbrot() Mandelbrot { return Mandelbrot{} }

func (Mandelbrot) Name() string { return "mandelbrot" }

func (Mandelbrot) RelevantKeys() []string { return escapeKeys }

func (Mandelbrot) Generate(p core.Params) []core.Sample {
	return generateEscape(p, MandelbrotIterations)
}

// MandelbrotIterations returns the number of steps before |z|² exceeds 4,
// capped at maxIter. The result is always in [0, maxIter].
func MandelbrotIterations(cx, cy float64, maxIter int) int {
	zr, zi := 0.0, 0.0
	for i := 0; i < maxIter; i++ {
		if zr*zr+zi*zi > 4.0 {
			return i
		}
		zr, zi = zr*zr-zi*zi+cx, 2.0*zr*zi+cy
	}
	return maxIter
}
