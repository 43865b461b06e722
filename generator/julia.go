package generator

import "github.com/lixenwraith/fractal-synth/core"

// Julia iterates z ← z² + c from z = pixel coordinate, with a fixed
// constant c read from the julia_cx/julia_cy parameters.
type Julia struct{}

func NewJulia() Julia { return Julia{} }

func (Julia) Name() string { return "julia" }

// RelevantKeys includes the Julia constant on top of the shared view keys
func (Julia) RelevantKeys() []string {
	keys := make([]string, 0, len(escapeKeys)+2)
	keys = append(keys, escapeKeys...)
	return append(keys, core.KeyJuliaCX, core.KeyJuliaCY)
}

func (Julia) Generate(p core.Params) []core.Sample {
	jx := p.Get(core.KeyJuliaCX)
	jy := p.Get(core.KeyJuliaCY)
	return generateEscape(p, func(cx, cy float64, maxIter int) int {
		return JuliaIterations(cx, cy, jx, jy, maxIter)
	})
}

// JuliaIterations runs the quadratic recurrence seeded at (zx, zy) with
// constant (cx, cy), capped at maxIter.
func JuliaIterations(zx, zy, cx, cy float64, maxIter int) int {
	zr, zi := zx, zy
	for i := 0; i < maxIter; i++ {
		if zr*zr+zi*zi > 4.0 {
			return i
		}
		zr, zi = zr*zr-zi*zi+cx, 2.0*zr*zi+cy
	}
	return maxIter
}
