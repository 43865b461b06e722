package modulator

import "github.com/lixenwraith/fractal-synth/core"

// TriggerTimeKey is the parameter holding the envelope's trigger instant
const TriggerTimeKey = "trigger_time"

// Envelope is a staged attack/decay/sustain ramp keyed off the distance
// between the trigger_time parameter and current patch time: linear 0→1
// over Attack, linear 1→Sustain over Decay, then hold at Sustain. Release
// is declared for completeness but does not alter the steady-state hold.
type Envelope struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
}

func (Envelope) Name() string { return "envelope" }

func (e Envelope) Value(p core.Params) float64 {
	t := p.Get(core.KeyTime) - p.Get(TriggerTimeKey)
	if t < 0 {
		return 0
	}
	if t < e.Attack {
		if e.Attack <= 0 {
			return 1
		}
		return t / e.Attack
	}
	t -= e.Attack
	if t < e.Decay {
		if e.Decay <= 0 {
			return e.Sustain
		}
		return 1 + (e.Sustain-1)*(t/e.Decay)
	}
	return e.Sustain
}
