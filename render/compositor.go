package render

import (
	"github.com/lixenwraith/fractal-synth/core"
)

// defaultFootprint is the square size of a sample with no size annotation
const defaultFootprint = 1

// Compositor folds each frame's sample set into a persistent pixel buffer,
// honoring the side-channel parameters effects write:
//
//	motion_blur_alpha — fraction of the previous composite kept under the
//	                    new samples (trail persistence)
//	feedback_mix      — fraction of the previous composite blended over
//	                    the finished frame (video feedback)
type Compositor struct {
	current *Frame
	prev    *Frame
}

func NewCompositor(width, height int) *Compositor {
	return &Compositor{
		current: NewFrame(width, height),
		prev:    NewFrame(width, height),
	}
}

// Resize adjusts both buffers and drops history so stale trails never
// bleed across a terminal resize
func (c *Compositor) Resize(width, height int) {
	c.current.Resize(width, height)
	c.prev.Resize(width, height)
}

// Composite renders one sample set into the frame buffer and returns it.
// The returned frame is owned by the compositor and valid until the next
// call.
func (c *Compositor) Composite(samples []core.Sample, p core.Params) *Frame {
	blur := clamp01(p.Get(core.KeyMotionBlurAlpha))
	if blur > 0 {
		c.current.CopyFrom(c.prev)
		c.current.Fade(blur)
	} else {
		c.current.Clear()
	}

	for _, s := range samples {
		if !s.HasColor {
			continue
		}
		c.plot(s)
	}

	if mix := clamp01(p.Get(core.KeyFeedbackMix)); mix > 0 {
		c.current.Mix(c.prev, mix)
	}

	c.prev.CopyFrom(c.current)
	return c.current
}

// plot draws one sample's footprint with its normalized alpha
func (c *Compositor) plot(s core.Sample) {
	color := core.RGB{R: s.R, G: s.G, B: s.B}
	alpha := 1.0
	if s.HasAlpha {
		alpha = normalizeAlpha(s.Alpha)
	}

	size := defaultFootprint
	if s.HasSize && s.Size > 0 {
		size = s.Size
	}

	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			if alpha >= 1.0 {
				c.current.Set(s.X+dx, s.Y+dy, color)
			} else {
				c.current.Blend(s.X+dx, s.Y+dy, color, alpha)
			}
		}
	}
}

// normalizeAlpha accepts both unit-range and byte-range alpha annotations.
// Echo layers write [0, 1]; particles write [0, 255].
func normalizeAlpha(a float64) float64 {
	if a > 1.0 {
		a /= 255.0
	}
	return clamp01(a)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
