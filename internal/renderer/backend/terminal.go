package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ted-editor/ted/internal/input/key"
)

// Terminal implements Backend on a real terminal using tcell. tcell owns raw
// mode and the alternate screen between Init and Shutdown.
type Terminal struct {
	screen tcell.Screen
}

// NewTerminal creates a terminal backend. Init must be called before use.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	return t.screen.Init()
}

func (t *Terminal) Shutdown() {
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, r rune) {
	t.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	switch style {
	case CursorBar:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	default:
		t.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	}
}

func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{Type: EventNone}
	}
	return convertEvent(ev)
}

func (t *Terminal) PostEvent(ev Event) {
	if ev.Type != EventKey {
		return
	}
	tcellEv := tcell.NewEventKey(toTcellKey(ev.Key), ev.Key.Rune, tcell.ModNone)
	_ = t.screen.PostEvent(tcellEv) // best-effort; event queue may be full
}

// convertEvent converts tcell events to our Event type. Event kinds the
// editor never reacts to come back as EventNone.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return Event{Type: EventKey, Key: convertKey(e)}
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	default:
		return Event{Type: EventNone}
	}
}

// convertKey converts a tcell key event to a key.Event.
func convertKey(e *tcell.EventKey) key.Event {
	switch e.Key() {
	case tcell.KeyRune:
		return key.Rune(e.Rune())
	case tcell.KeyEscape:
		return key.Special(key.KeyEscape)
	case tcell.KeyEnter:
		return key.Special(key.KeyEnter)
	case tcell.KeyTab:
		return key.Special(key.KeyTab)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.Special(key.KeyBackspace)
	case tcell.KeyDelete:
		return key.Special(key.KeyDelete)
	case tcell.KeyHome:
		return key.Special(key.KeyHome)
	case tcell.KeyEnd:
		return key.Special(key.KeyEnd)
	case tcell.KeyUp:
		return key.Special(key.KeyUp)
	case tcell.KeyDown:
		return key.Special(key.KeyDown)
	case tcell.KeyLeft:
		return key.Special(key.KeyLeft)
	case tcell.KeyRight:
		return key.Special(key.KeyRight)
	default:
		return key.Event{}
	}
}

// toTcellKey converts a key.Event back to a tcell.Key for PostEvent.
func toTcellKey(e key.Event) tcell.Key {
	switch e.Key {
	case key.KeyEscape:
		return tcell.KeyEscape
	case key.KeyEnter:
		return tcell.KeyEnter
	case key.KeyTab:
		return tcell.KeyTab
	case key.KeyBackspace:
		return tcell.KeyBackspace2
	case key.KeyDelete:
		return tcell.KeyDelete
	case key.KeyHome:
		return tcell.KeyHome
	case key.KeyEnd:
		return tcell.KeyEnd
	case key.KeyUp:
		return tcell.KeyUp
	case key.KeyDown:
		return tcell.KeyDown
	case key.KeyLeft:
		return tcell.KeyLeft
	case key.KeyRight:
		return tcell.KeyRight
	default:
		return tcell.KeyRune
	}
}
