package audio

import (
	"math"
	"testing"
)

// sineStreamer produces a pure tone at a fixed frequency
type sineStreamer struct {
	freq  float64
	phase float64
}

func (s *sineStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0], samples[i][1] = v, v
		s.phase += s.freq / SampleRate
		if s.phase >= 1 {
			s.phase -= 1
		}
	}
	return len(samples), true
}

func (s *sineStreamer) Err() error { return nil }

// drainedStreamer reports no samples available
type drainedStreamer struct{}

func (drainedStreamer) Stream(samples [][2]float64) (int, bool) { return 0, false }
func (drainedStreamer) Err() error                              { return nil }

// TestAnalyzerFindsToneBand verifies a 440 Hz tone registers in its band
// and not far above it
func TestAnalyzerFindsToneBand(t *testing.T) {
	a := NewAnalyzer(&sineStreamer{freq: 440})
	for i := 0; i < 20; i++ {
		a.Pump()
	}

	inBand := a.Level(300, 600)
	outOfBand := a.Level(5000, 10000)

	if inBand <= 0.05 {
		t.Errorf("Expected tone energy in band, got %v", inBand)
	}
	if outOfBand >= inBand/4 {
		t.Errorf("Expected little energy out of band, got %v (in band %v)", outOfBand, inBand)
	}
}

// TestLevelBounded verifies levels stay inside [0, 1]
func TestLevelBounded(t *testing.T) {
	a := NewAnalyzer(NewNoiseSource(1))
	for i := 0; i < 50; i++ {
		a.Pump()
		if l := a.Level(0, SampleRate/2); l < 0 || l > 1 {
			t.Fatalf("Level out of bounds at pump %d: %v", i, l)
		}
	}
}

// TestLevelEmptyBand verifies degenerate bands read zero
func TestLevelEmptyBand(t *testing.T) {
	a := NewAnalyzer(NewNoiseSource(1))
	a.Pump()
	if l := a.Level(600, 600); l != 0 {
		t.Errorf("Expected zero for empty band, got %v", l)
	}
	if l := a.Level(600, 300); l != 0 {
		t.Errorf("Expected zero for inverted band, got %v", l)
	}
}

// TestDrainedSourceDecays verifies a silent source decays toward zero
func TestDrainedSourceDecays(t *testing.T) {
	a := NewAnalyzer(&sineStreamer{freq: 440})
	for i := 0; i < 20; i++ {
		a.Pump()
	}
	before := a.Level(300, 600)

	a.source = drainedStreamer{}
	for i := 0; i < 50; i++ {
		a.Pump()
	}
	after := a.Level(300, 600)

	if after >= before/2 {
		t.Errorf("Expected level to decay from %v, got %v", before, after)
	}
}

// TestNoiseSourceBounded verifies the leaky integrator stays in range
func TestNoiseSourceBounded(t *testing.T) {
	s := NewNoiseSource(7)
	buf := make([][2]float64, 4096)
	for round := 0; round < 10; round++ {
		n, ok := s.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatalf("Expected full buffer, got n=%d ok=%v", n, ok)
		}
		for i, v := range buf {
			if v[0] < -5 || v[0] > 5 {
				t.Fatalf("Noise escaped bounds at %d: %v", i, v[0])
			}
			if v[0] != v[1] {
				t.Fatal("Expected identical channels")
			}
		}
	}
}
