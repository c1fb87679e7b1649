package form

import "github.com/idilsaglam/tuido/internal/keys"

// Status gates whether keys reach the focused field.
//
//	Viewing    --enter--> Editing
//	Editing    --enter--> Viewing
//	any but Submitting --ctrl+s--> Submitting
//
// Only Editing forwards keys. Submitting absorbs everything until the owner
// calls Reset or Retry.
type Status int

const (
	Viewing Status = iota
	Editing
	Submitting
)

func (s Status) String() string {
	switch s {
	case Viewing:
		return "Viewing"
	case Editing:
		return "Editing"
	case Submitting:
		return "Submitting"
	}
	return "?"
}

// HandleKey applies ev and reports whether it should be forwarded to the
// focused field.
func (s *Status) HandleKey(ev keys.Event) (forward bool) {
	if *s == Submitting {
		return false
	}
	if ev.Matches(keys.Submit) {
		*s = Submitting
		return false
	}
	switch *s {
	case Viewing:
		if ev.Matches(keys.Confirm) {
			*s = Editing
		}
		return false
	case Editing:
		if ev.Matches(keys.Confirm) {
			*s = Viewing
			return false
		}
		return true
	}
	return false
}

// Reset returns to Viewing, e.g. after a submission was consumed.
func (s *Status) Reset() { *s = Viewing }

// Retry returns a rejected submission to Editing.
func (s *Status) Retry() { *s = Editing }
