package todolist

import (
	"fmt"
	"strings"
)

// Row is the display state of one record.
type Row struct {
	Title     string
	Status    string
	Completed bool
	Selected  bool
}

// Rows returns one Row per record, in order.
func (l *List) Rows() []Row {
	out := make([]Row, 0, len(l.items))
	for i, it := range l.items {
		out = append(out, Row{
			Title:     it.Title,
			Status:    it.Status.String(),
			Completed: it.Completed,
			Selected:  i == l.selected,
		})
	}
	return out
}

// Lines renders each record as "[✓] title - Status".
func (l *List) Lines() []string {
	out := make([]string, 0, len(l.items))
	for _, r := range l.Rows() {
		box := "[✗]"
		if r.Completed {
			box = "[✓]"
		}
		out = append(out, fmt.Sprintf("%s %s - %s", box, r.Title, r.Status))
	}
	return out
}

// NoSelection is the detail text shown when nothing is selected.
const NoSelection = "No item selected"

// SelectedDetail describes the selected record field by field.
func (l *List) SelectedDetail() string {
	it, ok := l.SelectedRecord()
	if !ok {
		return NoSelection
	}
	var b strings.Builder
	fmt.Fprintf(&b, "title: %s\n", it.Title)
	fmt.Fprintf(&b, "id: %s\n", it.ID)
	fmt.Fprintf(&b, "description:\n  %s\n", it.Description)
	fmt.Fprintf(&b, "completed: %t\n", it.Completed)
	fmt.Fprintf(&b, "status: %s", it.Status)
	return b.String()
}
