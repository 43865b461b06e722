package generator

import (
	"runtime"
	"sync"

	"github.com/lixenwraith/fractal-synth/core"
)

// Generator produces a field of per-pixel samples from a parameter set.
// Implementations must be pure functions of the keys they declare in
// RelevantKeys: the patch uses that declaration to decide when a cached
// field can be reused, so reading an undeclared key causes stale reuse.
type Generator interface {
	// Name identifies the generator variant; it is part of the cache key
	Name() string

	// Generate evaluates the field for the given parameters
	Generate(p core.Params) []core.Sample

	// RelevantKeys declares exactly which parameters affect the output
	RelevantKeys() []string
}

// escapeKeys are the parameters every escape-time generator depends on.
// Time is deliberately absent: the field is stable across animation frames
// that only advance time or effect parameters.
var escapeKeys = []string{
	core.KeyWidth,
	core.KeyHeight,
	core.KeyCenterX,
	core.KeyCenterY,
	core.KeyZoom,
	core.KeyMaxIter,
}

// view captures the pixel-to-plane mapping for one frame
type view struct {
	width, height    int
	centerX, centerY float64
	aspect           float64
	scale            float64
	maxIter          int
}

func newView(p core.Params) view {
	w := int(p.Get(core.KeyWidth))
	h := int(p.Get(core.KeyHeight))
	zoom := p.Get(core.KeyZoom)

	v := view{
		width:   w,
		height:  h,
		centerX: p.Get(core.KeyCenterX),
		centerY: p.Get(core.KeyCenterY),
		maxIter: int(p.Get(core.KeyMaxIter)),
	}
	if h > 0 {
		v.aspect = float64(w) / float64(h)
	}
	if zoom != 0 {
		v.scale = 4.0 / zoom
	}
	return v
}

// planePoint maps pixel (px, py) to its complex-plane coordinate:
// center + ((px/width - 0.5) * aspect, (py/height - 0.5)) * (4/zoom).
// This mapping defines pan/zoom semantics; click-to-zoom inverts it.
func (v view) planePoint(px, py int) (float64, float64) {
	re := v.centerX + (float64(px)/float64(v.width)-0.5)*v.aspect*v.scale
	im := v.centerY + (float64(py)/float64(v.height)-0.5)*v.scale
	return re, im
}

// PlanePoint exposes the pixel-to-plane mapping for interaction handlers
func PlanePoint(p core.Params, px, py int) (float64, float64) {
	return newView(p).planePoint(px, py)
}

// iterateFunc runs one escape-time recurrence for a plane coordinate
type iterateFunc func(cx, cy float64, maxIter int) int

// generateEscape evaluates an escape-time field with parallel scanlines.
// Each pixel is a pure function of its own coordinate and the frame's
// parameter snapshot, so rows can be computed in any order.
func generateEscape(p core.Params, iterate iterateFunc) []core.Sample {
	v := newView(p)
	if v.width <= 0 || v.height <= 0 {
		return nil
	}

	samples := make([]core.Sample, v.width*v.height)
	maxValue := float64(v.maxIter)

	parallelRows(v.height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := samples[y*v.width : (y+1)*v.width]
			for x := 0; x < v.width; x++ {
				cx, cy := v.planePoint(x, y)
				row[x] = core.Sample{
					X:        x,
					Y:        y,
					Value:    float64(iterate(cx, cy, v.maxIter)),
					MaxValue: maxValue,
				}
			}
		}
	})
	return samples
}

// parallelRows splits [0, rows) into contiguous chunks, one per worker
func parallelRows(rows int, fn func(y0, y1 int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		fn(0, rows)
		return
	}

	var wg sync.WaitGroup
	chunk := (rows + workers - 1) / workers
	for y0 := 0; y0 < rows; y0 += chunk {
		y1 := y0 + chunk
		if y1 > rows {
			y1 = rows
		}
		wg.Add(1)
		go func(a, b int) {
			defer wg.Done()
			fn(a, b)
		}(y0, y1)
	}
	wg.Wait()
}
