package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/idilsaglam/tuido/internal/app"
	"github.com/idilsaglam/tuido/internal/keys"
)

// keyMap implements help.KeyMap over a fixed binding list.
type keyMap []key.Binding

func (k keyMap) ShortHelp() []key.Binding  { return k }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

// normalKeys mirrors app.NormalBindings so the help bar cannot drift from
// the dispatcher.
var normalKeys = func() keyMap {
	out := make(keyMap, 0, len(app.NormalBindings))
	for _, b := range app.NormalBindings {
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Help, b.Desc)))
	}
	return out
}()

var formKeys = keyMap{
	key.NewBinding(key.WithKeys(keys.Confirm.String()), key.WithHelp("enter", "edit/view")),
	key.NewBinding(key.WithKeys(keys.FocusForward.String(), keys.FocusBackward.String()), key.WithHelp("tab/shift+tab", "field")),
	key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "status")),
	key.NewBinding(key.WithKeys(keys.Submit.String()), key.WithHelp("ctrl+s", "save")),
	key.NewBinding(key.WithKeys(keys.Cancel.String()), key.WithHelp("esc", "cancel")),
}
