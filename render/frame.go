package render

import "github.com/lixenwraith/fractal-synth/core"

// Frame is a pixel-addressed RGB buffer, two pixels per terminal cell
// vertically when drawn with half blocks
type Frame struct {
	pixels []core.RGB
	width  int
	height int
}

// NewFrame creates a frame with the specified pixel dimensions
func NewFrame(width, height int) *Frame {
	return &Frame{
		pixels: make([]core.RGB, width*height),
		width:  width,
		height: height,
	}
}

func (f *Frame) Width() int  { return f.width }
func (f *Frame) Height() int { return f.height }

// Resize adjusts frame dimensions, reallocates only if capacity insufficient
func (f *Frame) Resize(width, height int) {
	size := width * height
	if cap(f.pixels) < size {
		f.pixels = make([]core.RGB, size)
	} else {
		f.pixels = f.pixels[:size]
	}
	f.width = width
	f.height = height
	f.Clear()
}

// Clear resets all pixels to black using exponential copy
func (f *Frame) Clear() {
	if len(f.pixels) == 0 {
		return
	}
	f.pixels[0] = core.RGBBlack
	for filled := 1; filled < len(f.pixels); filled *= 2 {
		copy(f.pixels[filled:], f.pixels[:filled])
	}
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// At returns the pixel at (x, y), black when out of bounds
func (f *Frame) At(x, y int) core.RGB {
	if !f.inBounds(x, y) {
		return core.RGBBlack
	}
	return f.pixels[y*f.width+x]
}

// Set writes the pixel at (x, y), ignoring out-of-bounds writes
func (f *Frame) Set(x, y int, c core.RGB) {
	if !f.inBounds(x, y) {
		return
	}
	f.pixels[y*f.width+x] = c
}

// Blend alpha-composites a color onto the pixel at (x, y)
func (f *Frame) Blend(x, y int, c core.RGB, alpha float64) {
	if !f.inBounds(x, y) {
		return
	}
	idx := y*f.width + x
	f.pixels[idx] = f.pixels[idx].Blend(c, alpha)
}

// Fade scales every pixel toward black, keeping the given fraction
func (f *Frame) Fade(keep float64) {
	for i := range f.pixels {
		f.pixels[i] = f.pixels[i].Scale(keep)
	}
}

// Mix blends another frame of the same dimensions into this one
func (f *Frame) Mix(other *Frame, amount float64) {
	if other == nil || other.width != f.width || other.height != f.height {
		return
	}
	for i := range f.pixels {
		f.pixels[i] = f.pixels[i].Lerp(other.pixels[i], amount)
	}
}

// CopyFrom replaces this frame's contents with another's
func (f *Frame) CopyFrom(other *Frame) {
	f.Resize(other.width, other.height)
	copy(f.pixels, other.pixels)
}
