package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Status is the workflow state of a Record.
type Status int

const (
	Pending Status = iota
	InProgress
	Completed
)

// Statuses lists every Status in display order.
var Statuses = []Status{Pending, InProgress, Completed}

func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case InProgress:
		return "InProgress"
	case Completed:
		return "Completed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ParseStatus maps a persisted tag back to its Status.
func ParseStatus(tag string) (Status, error) {
	for _, s := range Statuses {
		if s.String() == tag {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown status %q", tag)
}

func (s Status) MarshalJSON() ([]byte, error) {
	if s < Pending || s > Completed {
		return nil, fmt.Errorf("invalid status %d", int(s))
	}
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var tag string
	if err := json.Unmarshal(b, &tag); err != nil {
		return fmt.Errorf("status: %w", err)
	}
	v, err := ParseStatus(tag)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Record is a single todo entry. ID is assigned once at creation.
type Record struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Status      Status `json:"status"`
}

// wireRecord mirrors Record with pointers so that absent keys are detectable.
type wireRecord struct {
	ID          *string `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Status      *Status `json:"status"`
}

// ErrMissingField is returned when a persisted record lacks one of its keys.
var ErrMissingField = errors.New("missing field")

// UnmarshalJSON decodes strictly: every key must be present and no other
// key is accepted.
func (r *Record) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	var w wireRecord
	if err := dec.Decode(&w); err != nil {
		return err
	}
	switch {
	case w.ID == nil:
		return fmt.Errorf("%w: id", ErrMissingField)
	case w.Title == nil:
		return fmt.Errorf("%w: title", ErrMissingField)
	case w.Description == nil:
		return fmt.Errorf("%w: description", ErrMissingField)
	case w.Completed == nil:
		return fmt.Errorf("%w: completed", ErrMissingField)
	case w.Status == nil:
		return fmt.Errorf("%w: status", ErrMissingField)
	}
	*r = Record{
		ID:          *w.ID,
		Title:       *w.Title,
		Description: *w.Description,
		Completed:   *w.Completed,
		Status:      *w.Status,
	}
	return nil
}
