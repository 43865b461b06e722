package core

// Canvas and view parameters shared by every escape-time generator
const (
	// KeyWidth is the canvas width in pixels
	KeyWidth = "width"

	// KeyHeight is the canvas height in pixels
	KeyHeight = "height"

	// KeyCenterX is the real component of the view center on the complex plane
	KeyCenterX = "center_x"

	// KeyCenterY is the imaginary component of the view center
	KeyCenterY = "center_y"

	// KeyZoom is the magnification factor (1.0 shows a 4-unit-tall window)
	KeyZoom = "zoom"

	// KeyMaxIter is the escape-time iteration cap
	KeyMaxIter = "max_iter"
)

// Animation and interaction parameters
const (
	// KeyTime is elapsed patch time in seconds, advanced by the driver each frame
	KeyTime = "time"

	// KeyMouseX and KeyMouseY are the cursor position in pixel coordinates
	KeyMouseX = "mouse_x"
	KeyMouseY = "mouse_y"
)

// Generator-specific parameters
const (
	// KeyJuliaCX and KeyJuliaCY are the fixed Julia constant c
	KeyJuliaCX = "julia_cx"
	KeyJuliaCY = "julia_cy"
)

// Render-time side channels written by effects and honored by the compositor
const (
	// KeyMotionBlurAlpha is the opacity of the full-canvas fade overlay
	// drawn before compositing new samples (0 disables the trail)
	KeyMotionBlurAlpha = "motion_blur_alpha"

	// KeyFeedbackMix is the blend ratio against the previous composited
	// frame (0 disables feedback)
	KeyFeedbackMix = "feedback_mix"
)
