package form

import (
	"fmt"

	"github.com/idilsaglam/tuido/internal/keys"
)

// Field is one editable attribute of a form.
type Field interface {
	Label() string
	// Display is the current value as shown to the user.
	Display() string
	// ApplyKey mutates the value in place. Keys the field does not
	// understand are ignored.
	ApplyKey(ev keys.Event)
}

// TextField holds free text.
type TextField struct {
	label string
	value []rune
}

func NewTextField(label string) *TextField {
	return &TextField{label: label}
}

func (f *TextField) Label() string   { return f.label }
func (f *TextField) Display() string { return string(f.value) }
func (f *TextField) Value() string   { return string(f.value) }
func (f *TextField) Empty() bool     { return len(f.value) == 0 }
func (f *TextField) Clear()          { f.value = f.value[:0] }

func (f *TextField) SetValue(v string) { f.value = []rune(v) }

func (f *TextField) ApplyKey(ev keys.Event) {
	switch {
	case ev.Printable():
		f.value = append(f.value, ev.Rune)
	case ev.Code == keys.CodeBackspace, ev.Code == keys.CodeDelete:
		if n := len(f.value); n > 0 {
			f.value = f.value[:n-1]
		}
	}
}

// ChoiceField selects one of a fixed, non-empty list of options.
// Navigation wraps at both ends.
type ChoiceField[V interface {
	comparable
	fmt.Stringer
}] struct {
	label    string
	options  []V
	selected int
}

// NewChoiceField panics when options is empty.
func NewChoiceField[V interface {
	comparable
	fmt.Stringer
}](label string, options []V) *ChoiceField[V] {
	if len(options) == 0 {
		panic("form: choice field " + label + " needs at least one option")
	}
	return &ChoiceField[V]{label: label, options: append([]V(nil), options...)}
}

func (f *ChoiceField[V]) Label() string   { return f.label }
func (f *ChoiceField[V]) Display() string { return f.Value().String() }
func (f *ChoiceField[V]) Value() V        { return f.options[f.selected] }
func (f *ChoiceField[V]) Index() int      { return f.selected }

// SetValue selects v; values not among the options are ignored.
func (f *ChoiceField[V]) SetValue(v V) {
	for i, o := range f.options {
		if o == v {
			f.selected = i
			return
		}
	}
}

func (f *ChoiceField[V]) ApplyKey(ev keys.Event) {
	n := len(f.options)
	switch ev.Code {
	case keys.CodeLeft, keys.CodeUp:
		f.selected = (f.selected - 1 + n) % n
	case keys.CodeRight, keys.CodeDown:
		f.selected = (f.selected + 1) % n
	}
}
