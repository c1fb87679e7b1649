package keys

import (
	"strings"
	"unicode"
)

// Code is the logical key of an Event.
type Code int

const (
	CodeNone Code = iota
	CodeRune
	CodeEnter
	CodeEsc
	CodeTab
	CodeBackTab
	CodeBackspace
	CodeDelete
	CodeUp
	CodeDown
	CodeLeft
	CodeRight
	CodeHome
	CodeEnd
)

var codeNames = map[Code]string{
	CodeEnter:     "enter",
	CodeEsc:       "esc",
	CodeTab:       "tab",
	CodeBackTab:   "shift+tab",
	CodeBackspace: "backspace",
	CodeDelete:    "delete",
	CodeUp:        "up",
	CodeDown:      "down",
	CodeLeft:      "left",
	CodeRight:     "right",
	CodeHome:      "home",
	CodeEnd:       "end",
}

// Modifiers is a bit set of the modifier keys held during an Event.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModAlt
	ModShift
)

// Event is a single key press, independent of how it was captured.
type Event struct {
	Code Code
	Rune rune // set when Code == CodeRune
	Mods Modifiers
}

// Rune returns an unmodified character event.
func Rune(r rune) Event { return Event{Code: CodeRune, Rune: r} }

// Ctrl returns a control-modified character event, e.g. Ctrl('s').
func Ctrl(r rune) Event { return Event{Code: CodeRune, Rune: unicode.ToLower(r), Mods: ModCtrl} }

// Key returns an unmodified named-key event.
func Key(c Code) Event { return Event{Code: c} }

// Has reports whether all modifiers in m are held.
func (e Event) Has(m Modifiers) bool { return e.Mods&m == m }

// Printable reports whether the event carries a character meant to be typed
// into a text value. Shift alone does not disqualify a character.
func (e Event) Printable() bool {
	if e.Code != CodeRune || e.Mods&(ModCtrl|ModAlt) != 0 {
		return false
	}
	return unicode.IsPrint(e.Rune)
}

// String renders the event using Bubble Tea's key naming, so that the names
// in help text and in key bindings line up ("a", "ctrl+s", "shift+tab").
func (e Event) String() string {
	var b strings.Builder
	if e.Has(ModCtrl) {
		b.WriteString("ctrl+")
	}
	if e.Has(ModAlt) {
		b.WriteString("alt+")
	}
	switch e.Code {
	case CodeRune:
		if e.Rune == ' ' {
			b.WriteString("space")
		} else {
			b.WriteRune(e.Rune)
		}
	case CodeNone:
		b.WriteString("none")
	default:
		b.WriteString(codeNames[e.Code])
	}
	return b.String()
}

// Named bindings shared by the form and the router.
var (
	Confirm       = Key(CodeEnter)
	Cancel        = Key(CodeEsc)
	Submit        = Ctrl('s')
	FocusForward  = Key(CodeTab)
	FocusBackward = Key(CodeBackTab)
)

// Matches reports whether e is the same key as other. Names are compared, so
// a Shift flag reported alongside a character is ignored.
func (e Event) Matches(other Event) bool { return e.String() == other.String() }

// Any reports whether e's name is one of names.
func (e Event) Any(names ...string) bool {
	s := e.String()
	for _, n := range names {
		if n == s {
			return true
		}
	}
	return false
}
