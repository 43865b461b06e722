package modulator

import "github.com/lixenwraith/fractal-synth/core"

// LevelSource reports the current signal energy in a frequency band,
// normalized to [0, 1]. The audio package provides the real implementation.
type LevelSource interface {
	Level(lowHz, highHz float64) float64
}

// Audio maps band energy from a level source into [-1, 1] through a
// sensitivity factor. The source only has to be bounded and noise-like;
// no particular audio fidelity is promised.
type Audio struct {
	Source      LevelSource
	LowHz       float64
	HighHz      float64
	Sensitivity float64
}

func (Audio) Name() string { return "audio" }

func (a Audio) Value(core.Params) float64 {
	if a.Source == nil {
		return 0
	}
	level := a.Source.Level(a.LowHz, a.HighHz)
	return clamp(level*a.Sensitivity*2-1, -1, 1)
}
