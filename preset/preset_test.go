package preset

import (
	"testing"

	"github.com/lixenwraith/fractal-synth/core"
)

// TestBuiltinsRegistered verifies every shipped preset resolves
func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{"classic", "julia-swirl", "trippy", "ship-trails", "noise-pulse"} {
		if _, ok := Get(name); !ok {
			t.Errorf("Expected preset %q registered", name)
		}
	}
}

// TestUnknownNameFallsBack verifies a bad name loads the default preset
func TestUnknownNameFallsBack(t *testing.T) {
	p := Load("no-such-preset")
	if p.Generator == nil || p.Generator.Name() != "mandelbrot" {
		t.Errorf("Expected fallback to classic mandelbrot, got %v", p.Generator)
	}
}

// TestFactoriesReturnFreshState verifies stateful effects are not shared
// between loads of the same preset
func TestFactoriesReturnFreshState(t *testing.T) {
	a := Load("trippy")
	b := Load("trippy")
	if len(a.Effects) == 0 || len(b.Effects) == 0 {
		t.Fatal("Expected trippy preset to carry effects")
	}
	for i := range a.Effects {
		if _, stateful := a.Effects[i].(interface{ Live() int }); !stateful {
			continue
		}
		if a.Effects[i] == b.Effects[i] {
			t.Error("Expected independent particle systems per load")
		}
	}
}

// TestPresetsRenderAFrame verifies each preset survives a small end-to-end
// evaluation
func TestPresetsRenderAFrame(t *testing.T) {
	for _, name := range Names() {
		p := Load(name).MergeParams(map[string]float64{
			core.KeyWidth:  16,
			core.KeyHeight: 12,
			core.KeyTime:   0.1,
		})
		_, f := p.ProcessFrame()
		if len(f.Samples) < 16*12 {
			t.Errorf("Preset %q: expected at least %d samples, got %d", name, 16*12, len(f.Samples))
		}
		for _, s := range f.Samples[:16*12] {
			if !s.HasColor {
				t.Errorf("Preset %q: expected base samples colored", name)
				break
			}
		}
	}
}
