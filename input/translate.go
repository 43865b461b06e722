package input

import (
	"github.com/gdamore/tcell/v2"
)

// Translate maps a tcell event to a semantic action. Unbound events
// translate to ActionNone.
func Translate(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Action{Type: ActionResize}
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventMouse:
		return translateMouse(ev)
	}
	return Action{}
}

func translateKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ, tcell.KeyEscape:
		return Action{Type: ActionQuit}
	case tcell.KeyRune:
		return translateRune(ev.Rune())
	}
	return Action{}
}

func translateRune(r rune) Action {
	switch r {
	case 'q':
		return Action{Type: ActionQuit}
	case ' ':
		return Action{Type: ActionTogglePause}
	case 'r':
		return Action{Type: ActionReset}
	case '+', '=':
		return Action{Type: ActionIterUp}
	case '-':
		return Action{Type: ActionIterDown}
	case 'e':
		return Action{Type: ActionExportPNG}
	case 's':
		return Action{Type: ActionSaveSnapshot}
	}
	if r >= '1' && r <= '9' {
		return Action{Type: ActionSelectPreset, Preset: int(r - '0')}
	}
	return Action{}
}

func translateMouse(ev *tcell.EventMouse) Action {
	x, y := ev.Position()
	if ev.Buttons()&tcell.Button1 != 0 {
		return Action{Type: ActionZoomClick, X: x, Y: y}
	}
	return Action{Type: ActionCursorMove, X: x, Y: y}
}
