package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides pausable synth time: the time parameter every
// modulator reads freezes while paused and resumes without a jump
type PausableClock struct {
	mu sync.RWMutex

	realStartTime time.Time

	isPaused        atomic.Bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

func NewPausableClock() *PausableClock {
	return &PausableClock{realStartTime: time.Now()}
}

// Elapsed returns synth seconds since start, excluding paused spans
func (pc *PausableClock) Elapsed() float64 {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return (pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime).Seconds()
	}
	return (time.Since(pc.realStartTime) - pc.totalPausedTime).Seconds()
}

// Pause stops synth time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		pc.pauseStartTime = time.Now()
	}
}

// Resume continues synth time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		defer pc.mu.Unlock()
		if !pc.pauseStartTime.IsZero() {
			pc.totalPausedTime += time.Since(pc.pauseStartTime)
			pc.pauseStartTime = time.Time{}
		}
	}
}

// Toggle flips the pause state
func (pc *PausableClock) Toggle() {
	if pc.IsPaused() {
		pc.Resume()
	} else {
		pc.Pause()
	}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}
