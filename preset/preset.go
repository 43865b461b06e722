package preset

import (
	"sync"

	"github.com/lixenwraith/fractal-synth/core"
	"github.com/lixenwraith/fractal-synth/patch"
)

// DefaultName is the preset served when an unknown name is requested
const DefaultName = "classic"

// Factory builds a fresh patch. Presets hand out factories rather than
// shared patches because stateful effects (particle systems, random walks)
// must not leak between sessions.
type Factory func() patch.Patch

var (
	presetsMu sync.RWMutex
	presets   = make(map[string]Factory)
)

// Register adds a preset factory by name
func Register(name string, factory Factory) {
	presetsMu.Lock()
	defer presetsMu.Unlock()
	presets[name] = factory
}

// Get retrieves a preset factory by name
func Get(name string) (Factory, bool) {
	presetsMu.RLock()
	defer presetsMu.RUnlock()
	f, ok := presets[name]
	return f, ok
}

// Names returns all registered preset names
func Names() []string {
	presetsMu.RLock()
	defer presetsMu.RUnlock()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}

// Load builds the named preset, falling back to the default for unknown
// names so a bad -preset flag still starts the synth
func Load(name string) patch.Patch {
	if f, ok := Get(name); ok {
		return f()
	}
	f, _ := Get(DefaultName)
	return f()
}

// baseParams is the shared view every preset starts from
func baseParams(extra map[string]float64) core.Params {
	vals := map[string]float64{
		core.KeyWidth:   80,
		core.KeyHeight:  48,
		core.KeyCenterX: -0.5,
		core.KeyCenterY: 0,
		core.KeyZoom:    1,
		core.KeyMaxIter: 100,
		core.KeyTime:    0,
	}
	for k, v := range extra {
		vals[k] = v
	}
	return core.NewParams(vals)
}
