package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/tuido/internal/model"
	"github.com/idilsaglam/tuido/internal/todolist"
	"github.com/idilsaglam/tuido/internal/ui"
)

func printList(w io.Writer, l *todolist.List, group bool) {
	t := ui.Current()
	d, p := l.Stats()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Todos"),
		ui.C(t.Success, t.SymDone), d,
		ui.C(t.Pending, t.SymUnchecked), p,
		ui.C(t.Accent, "Total"), l.Len(),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(t.Muted, ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if group {
		lines = append(lines, groupLines(l.Items())...)
	} else {
		lines = append(lines, flatLines(numbered(l.Items()))...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Muted, "Tip: add with `tuido add Buy milk -d \"2L\"`"))
	ui.Panel(w, lines)
}

// entry is a record with its 1-based position in the list, the index
// accepted by done and rm.
type entry struct {
	n   int
	rec model.Record
}

func numbered(items []model.Record) []entry {
	out := make([]entry, 0, len(items))
	for i, it := range items {
		out = append(out, entry{n: i + 1, rec: it})
	}
	return out
}

const maxTitleWidth = 80

func flatLines(items []entry) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{ui.C(t.Muted, "no items")}
	}
	out := make([]string, 0, len(items))
	for _, e := range items {
		it := e.rec
		idx := fmt.Sprintf("%2d.", e.n)
		box, color := t.BoxUnchecked, t.Muted
		if it.Completed {
			box, color = t.BoxChecked, t.Success
		}
		title := ansi.Truncate(it.Title, maxTitleWidth, "...")
		out = append(out, fmt.Sprintf("%s %s %s %s",
			ui.Dim(idx), ui.C(color, box), title, ui.C(t.StatusColor(it.Status), "("+it.Status.String()+")")))
	}
	return out
}

func groupLines(items []model.Record) []string {
	t := ui.Current()
	var pend, done []entry
	for _, e := range numbered(items) {
		if e.rec.Completed {
			done = append(done, e)
		} else {
			pend = append(pend, e)
		}
	}
	section := func(title string, es []entry) []string {
		lines := []string{ui.C(t.Accent, title)}
		if len(es) == 0 {
			return append(lines, ui.C(t.Muted, "(none)"))
		}
		return append(lines, flatLines(es)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}
