package keys

import tea "github.com/charmbracelet/bubbletea"

// FromTea converts a captured Bubble Tea key into core events. A run of
// runes (paste, IME) becomes one event per rune; unsupported keys yield nil.
func FromTea(msg tea.KeyMsg) []Event {
	var mods Modifiers
	if msg.Alt {
		mods |= ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes:
		out := make([]Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, Event{Code: CodeRune, Rune: r, Mods: mods})
		}
		return out
	case tea.KeySpace:
		return []Event{{Code: CodeRune, Rune: ' ', Mods: mods}}
	case tea.KeyEnter:
		return []Event{{Code: CodeEnter, Mods: mods}}
	case tea.KeyEsc:
		return []Event{{Code: CodeEsc, Mods: mods}}
	case tea.KeyTab:
		return []Event{{Code: CodeTab, Mods: mods}}
	case tea.KeyShiftTab:
		return []Event{{Code: CodeBackTab, Mods: mods | ModShift}}
	case tea.KeyBackspace:
		return []Event{{Code: CodeBackspace, Mods: mods}}
	case tea.KeyDelete:
		return []Event{{Code: CodeDelete, Mods: mods}}
	case tea.KeyUp:
		return []Event{{Code: CodeUp, Mods: mods}}
	case tea.KeyDown:
		return []Event{{Code: CodeDown, Mods: mods}}
	case tea.KeyLeft:
		return []Event{{Code: CodeLeft, Mods: mods}}
	case tea.KeyRight:
		return []Event{{Code: CodeRight, Mods: mods}}
	case tea.KeyHome:
		return []Event{{Code: CodeHome, Mods: mods}}
	case tea.KeyEnd:
		return []Event{{Code: CodeEnd, Mods: mods}}
	}

	// ctrl+a .. ctrl+z share their values with a few named keys handled
	// above (tab is ctrl+i, enter is ctrl+m), so they are matched by range.
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		r := 'a' + rune(msg.Type-tea.KeyCtrlA)
		return []Event{{Code: CodeRune, Rune: r, Mods: mods | ModCtrl}}
	}
	return nil
}
