// Package todolist owns the ordered records and the current selection.
// Items and selection change only through methods that keep the selection
// in range, so callers never see a dangling index.
package todolist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/idilsaglam/tuido/internal/model"
)

// ErrMalformed wraps every decoding failure of persisted data.
var ErrMalformed = errors.New("malformed todo data")

// Saver is the write half of a store.
type Saver interface {
	Save(data []byte) error
}

// List is the in-memory source of truth between load and save.
type List struct {
	items    []model.Record
	selected int // -1 when nothing is selected

	undo *removal
}

type removal struct {
	index  int
	record model.Record
}

// New returns an empty list with no selection.
func New() *List { return &List{selected: -1} }

// Load replaces the contents with the decoded raw bytes and clears the
// selection. Empty input yields an empty list.
func (l *List) Load(raw []byte) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		l.reset(nil)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var items []model.Record
	if err := dec.Decode(&items); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data", ErrMalformed)
	}

	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q at index %d", ErrMalformed, it.ID, i)
		}
		seen[it.ID] = struct{}{}
	}
	l.reset(items)
	return nil
}

func (l *List) reset(items []model.Record) {
	if items == nil {
		items = []model.Record{}
	}
	l.items = items
	l.selected = -1
	l.undo = nil
}

// Marshal serializes every record in order.
func (l *List) Marshal() ([]byte, error) {
	b, err := json.MarshalIndent(l.items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// Save serializes the list and hands it to s.
func (l *List) Save(s Saver) error {
	b, err := l.Marshal()
	if err != nil {
		return err
	}
	if err := s.Save(b); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

func (l *List) Len() int { return len(l.items) }

// Items returns a copy of the records.
func (l *List) Items() []model.Record {
	return append([]model.Record(nil), l.items...)
}

// Has reports whether a record with id exists.
func (l *List) Has(id string) bool {
	for _, it := range l.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Selected returns the selected index, if any.
func (l *List) Selected() (int, bool) {
	if l.selected < 0 {
		return 0, false
	}
	return l.selected, true
}

// SelectedRecord returns a copy of the selected record, if any.
func (l *List) SelectedRecord() (model.Record, bool) {
	i, ok := l.Selected()
	if !ok {
		return model.Record{}, false
	}
	return l.items[i], true
}

func (l *List) SelectNone() { l.selected = -1 }

// Select selects index i clamped to the list bounds.
func (l *List) Select(i int) {
	switch {
	case len(l.items) == 0:
		l.selected = -1
	case i < 0:
		l.selected = 0
	case i >= len(l.items):
		l.selected = len(l.items) - 1
	default:
		l.selected = i
	}
}

// SelectPrevious moves up one, stopping at the first item. With nothing
// selected it selects the last item.
func (l *List) SelectPrevious() {
	if l.selected < 0 {
		l.Select(len(l.items) - 1)
		return
	}
	l.Select(l.selected - 1)
}

// SelectNext moves down one, stopping at the last item. With nothing
// selected it selects the first item.
func (l *List) SelectNext() {
	if l.selected < 0 {
		l.Select(0)
		return
	}
	l.Select(l.selected + 1)
}

func (l *List) SelectFirst() { l.Select(0) }
func (l *List) SelectLast()  { l.Select(len(l.items) - 1) }

// ToggleCompleted flips the completed flag of the selected record.
func (l *List) ToggleCompleted() {
	if i, ok := l.Selected(); ok {
		l.items[i].Completed = !l.items[i].Completed
	}
}

// RemoveSelected deletes the selected record. The selection stays on the
// same index, moves to the new last item if the last one was removed, and
// is cleared when the list becomes empty.
func (l *List) RemoveSelected() {
	i, ok := l.Selected()
	if !ok {
		return
	}
	l.undo = &removal{index: i, record: l.items[i]}
	l.items = append(l.items[:i], l.items[i+1:]...)

	switch n := len(l.items); {
	case n == 0:
		l.selected = -1
	case i >= n:
		l.selected = n - 1
	}
}

// CanUndo reports whether a removal can be restored.
func (l *List) CanUndo() bool { return l.undo != nil }

// UndoRemove puts the last removed record back at its old index (clamped)
// and selects it. Only the most recent removal is kept.
func (l *List) UndoRemove() {
	if l.undo == nil {
		return
	}
	r := *l.undo
	l.undo = nil
	if l.Has(r.record.ID) {
		return
	}
	idx := min(max(r.index, 0), len(l.items))
	l.items = append(l.items, model.Record{})
	copy(l.items[idx+1:], l.items[idx:])
	l.items[idx] = r.record
	l.selected = idx
}

// Insert appends r. The selection is left alone.
func (l *List) Insert(r model.Record) {
	l.items = append(l.items, r)
}

// Stats counts completed and open records.
func (l *List) Stats() (done, pending int) {
	for _, it := range l.items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
