package render

import (
	"github.com/gdamore/tcell/v2"
)

// halfBlock renders two vertically-stacked pixels per terminal cell: the
// glyph's foreground is the top pixel, the background the bottom.
const halfBlock = '▀'

// ScreenRenderer draws composited frames onto a tcell screen using the
// half-block technique, doubling the effective vertical resolution
type ScreenRenderer struct {
	screen tcell.Screen
}

func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// PixelSize returns the frame dimensions matching the current terminal
// size: one pixel per column, two per row
func (r *ScreenRenderer) PixelSize() (int, int) {
	w, h := r.screen.Size()
	return w, h * 2
}

// Draw paints the frame onto the screen. The frame's pixel height is
// expected to be twice the terminal row count; odd trailing rows render
// with a black bottom half.
func (r *ScreenRenderer) Draw(frame *Frame) {
	cols, rows := r.screen.Size()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := frame.At(cx, cy*2)
			bottom := frame.At(cx, cy*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			r.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
}

// Show flushes pending draws to the terminal
func (r *ScreenRenderer) Show() {
	r.screen.Show()
}
