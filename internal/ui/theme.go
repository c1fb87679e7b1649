package ui

import (
	"strings"

	"github.com/idilsaglam/tuido/internal/model"
)

// Theme bundles palette, symbols and box borders for CLI output.
type Theme struct {
	Title, Muted, Accent, Error            string
	Pending, Active, Success               string
	BoxUnchecked, BoxChecked               string
	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string
	SymDone, SymUnchecked                  string
	Plain                                  bool // never emit colour
}

// Themes lists the names accepted by SetTheme, default first.
var Themes = []string{"classic", "neon", "mono"}

var themes = map[string]Theme{
	"classic": {
		Title: bold, Muted: fgGray, Accent: fgBlue, Error: fgRed,
		Pending: fgYellow, Active: fgBlue, Success: fgGreen,
		BoxUnchecked: "☐", BoxChecked: "☑",
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
		SymDone: "✔", SymUnchecked: "•",
	},
	"neon": {
		Title: "\033[95m", Muted: fgGray, Accent: "\033[96m", Error: fgRed,
		Pending: "\033[93m", Active: "\033[96m", Success: fgGreen,
		BoxUnchecked: "◻", BoxChecked: "◼",
		CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
		H: "─", V: "│",
		SymDone: "✔", SymUnchecked: "•",
	},
	"mono": {
		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
		H: "-", V: "|",
		SymDone: "x", SymUnchecked: "-",
		Plain: true,
	},
}

var current Theme

func init() { SetTheme(Themes[0]) }

// HasTheme reports whether name is a known theme. Case is ignored.
func HasTheme(name string) bool {
	_, ok := themes[strings.ToLower(name)]
	return ok
}

// SetTheme selects a theme by name; unknown names fall back to classic.
// Selecting a theme also resets any earlier colour disabling.
func SetTheme(name string) {
	t, ok := themes[strings.ToLower(name)]
	if !ok {
		t = themes[Themes[0]]
	}
	current = t
	disableColor = t.Plain
}

func Current() Theme { return current }

// StatusColor is the colour used for a record's workflow state.
func (t Theme) StatusColor(s model.Status) string {
	switch s {
	case model.InProgress:
		return t.Active
	case model.Completed:
		return t.Success
	}
	return t.Pending
}
