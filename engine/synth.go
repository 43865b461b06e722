package engine

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fractal-synth/audio"
	"github.com/lixenwraith/fractal-synth/core"
	"github.com/lixenwraith/fractal-synth/generator"
	"github.com/lixenwraith/fractal-synth/input"
	"github.com/lixenwraith/fractal-synth/modulator"
	"github.com/lixenwraith/fractal-synth/patch"
	"github.com/lixenwraith/fractal-synth/preset"
	"github.com/lixenwraith/fractal-synth/render"
	"github.com/lixenwraith/fractal-synth/store"
)

const (
	// Iteration depth bounds for the +/- controls
	minIter  = 20
	maxIter  = 500
	iterStep = 20

	// clickZoomFactor is applied per left click
	clickZoomFactor = 2.0
)

// Config carries the startup options resolved from flags
type Config struct {
	Preset   string
	FPS      int
	DBPath   string
	Snapshot string
}

// Synth owns the frame loop: it merges driver parameters into the patch,
// evaluates a frame, composites it, and draws
type Synth struct {
	cfg      Config
	screen   tcell.Screen
	renderer *render.ScreenRenderer
	comp     *render.Compositor
	clock    *PausableClock
	analyzer *audio.Analyzer
	snaps    *store.Store

	patch      patch.Patch
	presetName string

	mouseX, mouseY int
	lastFrame      time.Time
	fps            float64
}

// New builds a synth on an initialized screen. The store is optional; a
// nil store disables snapshot saving.
func New(screen tcell.Screen, snaps *store.Store, cfg Config) *Synth {
	s := &Synth{
		cfg:      cfg,
		screen:   screen,
		renderer: render.NewScreenRenderer(screen),
		clock:    NewPausableClock(),
		analyzer: audio.NewAnalyzer(audio.NewNoiseSource(time.Now().UnixNano())),
		snaps:    snaps,
	}

	w, h := s.renderer.PixelSize()
	s.comp = render.NewCompositor(w, h)
	s.loadPreset(cfg.Preset)

	if cfg.Snapshot != "" {
		s.restoreSnapshot(cfg.Snapshot)
	}
	return s
}

// Run drives the frame loop until quit
func (s *Synth) Run() {
	interval := time.Second / time.Duration(s.cfg.FPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- s.screen.PollEvent()
		}
	}()

	s.lastFrame = time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !s.handleAction(input.Translate(ev)) {
				return
			}

		case <-ticker.C:
			s.frame()
		}
	}
}

// frame evaluates and draws one frame
func (s *Synth) frame() {
	now := time.Now()
	if dt := now.Sub(s.lastFrame).Seconds(); dt > 0 {
		s.fps = 1.0 / dt
	}
	s.lastFrame = now

	s.analyzer.Pump()

	w, h := s.renderer.PixelSize()
	s.patch = s.patch.MergeParams(map[string]float64{
		core.KeyWidth:  float64(w),
		core.KeyHeight: float64(h),
		core.KeyTime:   s.clock.Elapsed(),
		core.KeyMouseX: float64(s.mouseX),
		core.KeyMouseY: float64(s.mouseY * 2),
	})

	next, frame := s.patch.ProcessFrame()
	s.patch = next

	composite := s.comp.Composite(frame.Samples, frame.Params)
	s.renderer.Draw(composite)
	render.DrawHUD(s.screen, render.HUDState{
		Preset:    s.presetName,
		Generator: s.patch.Generator.Name(),
		Zoom:      s.patch.Params.Get(core.KeyZoom),
		MaxIter:   int(s.patch.Params.Get(core.KeyMaxIter)),
		FPS:       s.fps,
		Paused:    s.clock.IsPaused(),
	})
	s.renderer.Show()
}

// handleAction applies one semantic action; returns false on quit
func (s *Synth) handleAction(a input.Action) bool {
	switch a.Type {
	case input.ActionQuit:
		return false

	case input.ActionTogglePause:
		s.clock.Toggle()

	case input.ActionReset:
		s.loadPreset(s.presetName)
		w, h := s.renderer.PixelSize()
		s.comp.Resize(w, h)

	case input.ActionSelectPreset:
		if name, ok := presetSlot(a.Preset); ok {
			s.loadPreset(name)
		}

	case input.ActionIterUp:
		s.adjustIter(iterStep)

	case input.ActionIterDown:
		s.adjustIter(-iterStep)

	case input.ActionZoomClick:
		s.zoomAt(a.X, a.Y)

	case input.ActionCursorMove:
		s.mouseX, s.mouseY = a.X, a.Y

	case input.ActionExportPNG:
		s.export()

	case input.ActionSaveSnapshot:
		s.saveSnapshot()

	case input.ActionResize:
		s.screen.Sync()
		w, h := s.renderer.PixelSize()
		s.comp.Resize(w, h)
	}
	return true
}

// presetSlot maps the digit keys to built-in preset names
func presetSlot(slot int) (string, bool) {
	names := []string{"classic", "julia-swirl", "trippy", "ship-trails", "noise-pulse"}
	if slot < 1 || slot > len(names) {
		return "", false
	}
	return names[slot-1], true
}

// loadPreset swaps in a fresh patch, binding the analyzer to any audio
// routes the preset declares
func (s *Synth) loadPreset(name string) {
	if _, ok := preset.Get(name); !ok {
		name = preset.DefaultName
	}
	s.presetName = name
	s.patch = s.bindAudio(preset.Load(name))
}

// bindAudio fills nil audio-modulator sources with the synth's analyzer
func (s *Synth) bindAudio(p patch.Patch) patch.Patch {
	for i, m := range p.Modulators {
		matrix, ok := m.(modulator.Matrix)
		if !ok {
			continue
		}
		routes := make([]modulator.Route, len(matrix.Routes))
		copy(routes, matrix.Routes)
		for j, r := range routes {
			if src, ok := r.Source.(modulator.Audio); ok && src.Source == nil {
				src.Source = s.analyzer
				routes[j].Source = src
			}
		}
		p.Modulators[i] = modulator.Matrix{Routes: routes}
	}
	return p
}

// adjustIter steps the iteration depth within bounds
func (s *Synth) adjustIter(delta int) {
	iter := int(s.patch.Params.Get(core.KeyMaxIter)) + delta
	if iter < minIter {
		iter = minIter
	}
	if iter > maxIter {
		iter = maxIter
	}
	s.patch = s.patch.MergeParams(map[string]float64{core.KeyMaxIter: float64(iter)})
}

// zoomAt recenters the view on the clicked cell and zooms in. Cell rows
// are two pixels tall, so the click maps to the upper pixel of the cell.
func (s *Synth) zoomAt(cellX, cellY int) {
	cx, cy := generator.PlanePoint(s.patch.Params, cellX, cellY*2)
	zoom := s.patch.Params.Get(core.KeyZoom) * clickZoomFactor
	s.patch = s.patch.MergeParams(map[string]float64{
		core.KeyCenterX: cx,
		core.KeyCenterY: cy,
		core.KeyZoom:    zoom,
	})
}

// export captures the last composited frame to a PNG in the working
// directory
func (s *Synth) export() {
	_, frame := s.patch.ProcessFrame()
	composite := s.comp.Composite(frame.Samples, frame.Params)
	name := render.ExportName(time.Now())
	if err := render.ExportPNG(composite, name); err != nil {
		log.Printf("export failed: %v", err)
	}
}

// saveSnapshot stores the current preset and parameter set under a
// timestamped name
func (s *Synth) saveSnapshot() {
	if s.snaps == nil {
		return
	}
	snap := store.Snapshot{
		Name:   "snap-" + time.Now().Format("20060102-150405"),
		Preset: s.presetName,
		Params: s.patch.Params.Snapshot(),
	}
	if err := s.snaps.Save(context.Background(), snap); err != nil {
		log.Printf("snapshot save failed: %v", err)
	}
}

// restoreSnapshot replays a stored snapshot over the freshly-loaded preset
func (s *Synth) restoreSnapshot(name string) {
	if s.snaps == nil {
		return
	}
	snap, err := s.snaps.Load(context.Background(), name)
	if err != nil {
		log.Printf("snapshot load failed: %v", err)
		return
	}
	s.loadPreset(snap.Preset)
	s.patch = s.patch.MergeParams(snap.Params)
}
