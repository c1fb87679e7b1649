package app

import "github.com/idilsaglam/tuido/internal/keys"

// Command is a Normal-mode action.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdAdd
	CmdEdit
	CmdDeselect
	CmdPrevious
	CmdNext
	CmdFirst
	CmdLast
	CmdToggle
	CmdRemove
	CmdUndo
)

// Binding ties key names (as produced by keys.Event.String) to a command.
// The same table drives dispatch and the help bar.
type Binding struct {
	Command Command
	Keys    []string
	Help    string // short key label, e.g. "j/↓"
	Desc    string
}

// NormalBindings is the Normal-mode key map, in help-bar order.
var NormalBindings = []Binding{
	{CmdAdd, []string{"a", "ctrl+a"}, "a", "add"},
	{CmdQuit, []string{"q", "ctrl+c"}, "q", "save & quit"},
	{CmdToggle, []string{"space", "D"}, "space", "toggle done"},
	{CmdRemove, []string{"x", "R"}, "x", "remove"},
	{CmdUndo, []string{"u"}, "u", "undo"},
	{CmdEdit, []string{"e", "ctrl+e"}, "e", "edit"},
	{CmdPrevious, []string{"k", "up"}, "k/↑", "up"},
	{CmdNext, []string{"j", "down"}, "j/↓", "down"},
	{CmdFirst, []string{"g", "home"}, "g", "first"},
	{CmdLast, []string{"G", "end"}, "G", "last"},
	{CmdDeselect, []string{"h", "esc"}, "h", "deselect"},
}

// Lookup returns the Normal-mode command bound to ev.
func Lookup(ev keys.Event) Command {
	for _, b := range NormalBindings {
		if ev.Any(b.Keys...) {
			return b.Command
		}
	}
	return CmdNone
}
