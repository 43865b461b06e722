package input

// ActionType discriminates semantic control actions
type ActionType uint8

const (
	ActionNone ActionType = iota

	// System-level actions
	ActionQuit   // Ctrl+C, Ctrl+Q, q
	ActionResize // Terminal resize event

	// Transport
	ActionTogglePause // Space
	ActionReset       // r

	// Patch control
	ActionSelectPreset // 1..9
	ActionIterUp       // + / =
	ActionIterDown     // -

	// Capture
	ActionExportPNG    // e
	ActionSaveSnapshot // s

	// Mouse
	ActionZoomClick  // Left click: recenter and zoom in
	ActionCursorMove // Motion: feeds the mouse modulator
)

// Action is a parsed semantic control event. Pure data struct with no
// engine dependencies; coordinates are terminal cell coordinates and the
// engine maps them to pixels.
type Action struct {
	Type   ActionType
	Preset int // preset slot for ActionSelectPreset, 1-based
	X, Y   int // cell coordinates for mouse actions
}
