// Package tcellkey adapts tcell key events into the engine's raw event
// model. Terminals only report key presses, so the adapter synthesizes a
// matching keyup immediately after each keydown; live capture still works
// because the recorder treats a press-and-release pair as a completed
// combination.
package tcellkey

import (
	"github.com/gdamore/tcell/v2"

	"github.com/chordkit/chordkit/internal/engine"
	"github.com/chordkit/chordkit/internal/key"
)

// specialNames maps tcell named keys to the engine's canonical tokens.
var specialNames = map[tcell.Key]string{
	tcell.KeyEscape:     "escape",
	tcell.KeyEnter:      "enter",
	tcell.KeyTab:        "tab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyDelete:     "delete",
	tcell.KeyUp:         "arrowup",
	tcell.KeyDown:       "arrowdown",
	tcell.KeyLeft:       "arrowleft",
	tcell.KeyRight:      "arrowright",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pageup",
	tcell.KeyPgDn:       "pagedown",
	tcell.KeyF1:         "f1",
	tcell.KeyF2:         "f2",
	tcell.KeyF3:         "f3",
	tcell.KeyF4:         "f4",
	tcell.KeyF5:         "f5",
	tcell.KeyF6:         "f6",
	tcell.KeyF7:         "f7",
	tcell.KeyF8:         "f8",
	tcell.KeyF9:         "f9",
	tcell.KeyF10:        "f10",
	tcell.KeyF11:        "f11",
	tcell.KeyF12:        "f12",
}

// Translate converts a tcell key event into a raw engine event.
func Translate(ev *tcell.EventKey) key.RawEvent {
	raw := key.RawEvent{
		Ctrl:  ev.Modifiers()&tcell.ModCtrl != 0,
		Alt:   ev.Modifiers()&tcell.ModAlt != 0,
		Shift: ev.Modifiers()&tcell.ModShift != 0,
		Meta:  ev.Modifiers()&tcell.ModMeta != 0,
	}

	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		raw.RawKey = string(ev.Rune())
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		// Terminals fold ctrl-letter chords into control characters.
		// Recover the letter and report the modifier explicitly.
		raw.RawKey = string(rune('a' + k - tcell.KeyCtrlA))
		raw.Ctrl = true
	case k == tcell.KeyCtrlSpace:
		raw.RawKey = "space"
		raw.Ctrl = true
	default:
		if name, ok := specialNames[k]; ok {
			raw.RawKey = name
		}
	}
	return raw
}

// Screen is the slice of tcell.Screen the stream needs.
type Screen interface {
	PollEvent() tcell.Event
}

// Stream pumps key events from a tcell screen into an engine until the
// stop channel closes or the screen is torn down. Run it on its own
// goroutine.
func Stream(screen Screen, e *engine.Engine, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}

		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		kev, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		raw := Translate(kev)
		if raw.RawKey == "" {
			continue
		}
		e.HandleKeyDown(raw)
		e.HandleKeyUp(raw)
	}
}
