package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	hudStyle       = tcell.StyleDefault.Foreground(tcell.NewRGBColor(220, 220, 220)).Background(tcell.NewRGBColor(20, 20, 30))
	hudPausedStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(230, 200, 60))
)

// HUDState is the per-frame status snapshot drawn over the top row
type HUDState struct {
	Preset    string
	Generator string
	Zoom      float64
	MaxIter   int
	FPS       float64
	Paused    bool
}

// DrawHUD paints the status line on the top terminal row, over the
// fractal. Width accounting uses rune widths so wide glyphs never shear
// the layout.
func DrawHUD(screen tcell.Screen, s HUDState) {
	cols, rows := screen.Size()
	if rows < 1 {
		return
	}
	y := 0

	text := fmt.Sprintf(" %s | %s | zoom %.2fx | iter %d | %.0f fps ",
		s.Preset, s.Generator, s.Zoom, s.MaxIter, s.FPS)
	style := hudStyle
	if s.Paused {
		text = " PAUSED |" + text[1:]
		style = hudPausedStyle
	}

	x := 0
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if x+w > cols {
			break
		}
		screen.SetContent(x, y, ch, nil, style)
		x += w
	}
	for ; x < cols; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}
