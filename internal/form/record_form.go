package form

import (
	"strings"

	"github.com/google/uuid"

	"github.com/idilsaglam/tuido/internal/keys"
	"github.com/idilsaglam/tuido/internal/model"
)

// IDFunc generates record ids.
type IDFunc func() string

// NewUUID is the default IDFunc.
func NewUUID() string { return uuid.NewString() }

// RecordForm edits one model.Record.
type RecordForm struct {
	status Status
	focus  FieldKey
	newID  IDFunc

	id          *TextField
	title       *TextField
	description *TextField
	state       *ChoiceField[model.Status]
}

// New returns an empty form whose id field holds a fresh id. A nil newID
// uses NewUUID.
func New(newID IDFunc) *RecordForm {
	if newID == nil {
		newID = NewUUID
	}
	f := &RecordForm{
		focus:       FieldTitle,
		newID:       newID,
		id:          NewTextField(FieldID.String()),
		title:       NewTextField(FieldTitle.String()),
		description: NewTextField(FieldDescription.String()),
		state:       NewChoiceField(FieldStatus.String(), model.Statuses),
	}
	f.id.SetValue(newID())
	return f
}

func (f *RecordForm) field(k FieldKey) Field {
	switch k {
	case FieldID:
		return f.id
	case FieldTitle:
		return f.title
	case FieldDescription:
		return f.description
	default:
		return f.state
	}
}

// HandleKey routes ev through the status machine, then focus navigation,
// then the focused field.
func (f *RecordForm) HandleKey(ev keys.Event) {
	if !f.status.HandleKey(ev) {
		return
	}
	switch {
	case ev.Matches(keys.FocusForward):
		f.focus = f.focus.Next()
	case ev.Matches(keys.FocusBackward):
		f.focus = f.focus.Prev()
	default:
		f.field(f.focus).ApplyKey(ev)
	}
}

func (f *RecordForm) Status() Status  { return f.status }
func (f *RecordForm) Focus() FieldKey { return f.focus }

// Submitted reports whether the form is waiting for its submission to be
// consumed.
func (f *RecordForm) Submitted() bool { return f.status == Submitting }

// Reject sends a pending submission back to Editing.
func (f *RecordForm) Reject() { f.status.Retry() }

// Reset clears the text fields and assigns a fresh id. The status choice
// is kept.
func (f *RecordForm) Reset() {
	f.id.Clear()
	f.title.Clear()
	f.description.Clear()
	f.id.SetValue(f.newID())
	f.status.Reset()
	f.focus = FieldTitle
}

// IsComplete reports whether the required fields are filled in.
func (f *RecordForm) IsComplete() bool {
	return strings.TrimSpace(f.title.Value()) != "" && strings.TrimSpace(f.description.Value()) != ""
}

// Record builds the record described by the form. New records are never
// completed; the status choice carries the workflow state.
func (f *RecordForm) Record() model.Record {
	return model.Record{
		ID:          strings.TrimSpace(f.id.Value()),
		Title:       strings.TrimSpace(f.title.Value()),
		Description: strings.TrimSpace(f.description.Value()),
		Status:      f.state.Value(),
	}
}

// Load fills the form from r.
func (f *RecordForm) Load(r model.Record) {
	f.id.SetValue(r.ID)
	f.title.SetValue(r.Title)
	f.description.SetValue(r.Description)
	f.state.SetValue(r.Status)
}

// FieldView is the display state of one field.
type FieldView struct {
	Key     FieldKey
	Label   string
	Value   string
	Focused bool
}

// View is the read-only display state of the form.
type View struct {
	Fields []FieldView
	Focus  FieldKey
	Status Status
}

func (f *RecordForm) View() View {
	v := View{Focus: f.focus, Status: f.status}
	for _, k := range FieldOrder {
		fl := f.field(k)
		v.Fields = append(v.Fields, FieldView{
			Key:     k,
			Label:   fl.Label(),
			Value:   fl.Display(),
			Focused: k == f.focus,
		})
	}
	return v
}
