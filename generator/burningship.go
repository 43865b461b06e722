package generator

import (
	"math"

	"github.com/lixenwraith/fractal-synth/core"
)

// BurningShip is the Mandelbrot recurrence with both components of z
// folded to their absolute value before squaring.
type BurningShip struct{}

func NewBurningShip() BurningShip { return BurningShip{} }

func (BurningShip) Name() string { return "burning_ship" }

func (BurningShip) RelevantKeys() []string { return escapeKeys }

func (BurningShip) Generate(p core.Params) []core.Sample {
	return generateEscape(p, BurningShipIterations)
}

// BurningShipIterations returns the escape count for z ← (|Re z|, |Im z|)² + c,
// capped at maxIter. The result is always in [0, maxIter].
func BurningShipIterations(cx, cy float64, maxIter int) int {
	zr, zi := 0.0, 0.0
	for i := 0; i < maxIter; i++ {
		if zr*zr+zi*zi > 4.0 {
			return i
		}
		ar, ai := math.Abs(zr), math.Abs(zi)
		zr, zi = ar*ar-ai*ai+cx, 2.0*ar*ai+cy
	}
	return maxIter
}
