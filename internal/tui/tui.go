// Package tui is the Bubble Tea front end. It converts captured keys into
// core events for app.App and renders the display state the core exposes;
// it holds no todo state of its own.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/idilsaglam/tuido/internal/app"
	"github.com/idilsaglam/tuido/internal/form"
	"github.com/idilsaglam/tuido/internal/keys"
	"github.com/idilsaglam/tuido/internal/logging"
	"github.com/idilsaglam/tuido/internal/todolist"
	"github.com/idilsaglam/tuido/internal/ui"
)

// listItem adapts a todolist.Row to bubbles/list.Item
type listItem struct {
	row todolist.Row
}

func (i listItem) FilterValue() string { return i.row.Title }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	theme := ui.Current()

	box := mutedStyle.Render(theme.BoxUnchecked)
	text := it.row.Title
	if it.row.Completed {
		box = successStyle.Render(theme.BoxChecked)
		text = doneStyle.Render(text)
	}
	line := fmt.Sprintf("%s %s %s", box, text, mutedStyle.Render(it.row.Status))

	prefix := "  "
	if it.row.Selected {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprint(w, prefix+line)
}

// Model is the Bubble Tea model wrapping an app.App.
type Model struct {
	app  *app.App
	list list.Model
	help help.Model

	width, height int
	err           error
}

// New builds the model and syncs it with the app's current state.
func New(a *app.App) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.PaginationStyle = helpStyle

	m := Model{
		app:    a,
		list:   l,
		help:   help.New(),
		width:  80,
		height: 24,
	}
	m.resize()
	m.sync()
	return m
}

// Run starts the program and blocks until the user quits. The list is
// saved by the app on quit; a storage failure is returned.
func Run(a *app.App, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	final, err := tea.NewProgram(New(a), opts...).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

// Err is the fatal error that ended the session, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		for _, ev := range keys.FromTea(msg) {
			res, err := m.app.HandleKey(ev)
			if err != nil {
				logging.Error("session ended", zap.Error(err))
				m.err = err
				return m, tea.Quit
			}
			if res.Quit {
				return m, tea.Quit
			}
		}
		m.sync()
	}
	return m, nil
}

// sync copies the list's display state into the bubbles list.
func (m *Model) sync() {
	rows := m.app.List().Rows()
	items := make([]list.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, listItem{row: r})
	}
	m.list.SetItems(items)
	if i, ok := m.app.List().Selected(); ok {
		m.list.Select(i)
	} else {
		m.list.ResetSelected()
	}
}

func (m *Model) resize() {
	m.help.Width = m.width - 4
	m.list.SetSize(m.listWidth(), m.bodyHeight())
}

func (m Model) listWidth() int  { return max(m.width*2/5-4, 10) }
func (m Model) bodyHeight() int { return max(m.height-8, 3) }

func (m Model) View() string {
	var body string
	switch m.app.Mode() {
	case app.Adding:
		body = m.formView()
	case app.Editing:
		body = panelStyle.Width(m.width - 4).Render(
			titleStyle.Render("Edit") + "\n" +
				mutedStyle.Render("Editing an existing item is not available yet."))
	default:
		body = m.listView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), body, m.footer())
}

func (m Model) header() string {
	l := m.app.List()
	done, pending := l.Stats()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d   %s",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
		accentStyle.Render("Total"), l.Len(),
		mutedStyle.Render("["+m.app.Mode().String()+"]"),
	)
}

func (m Model) listView() string {
	l := m.app.List()
	var left string
	if l.Len() == 0 {
		left = mutedStyle.Render("no items, press a to add one")
	} else {
		left = m.list.View()
	}
	leftBox := panelStyle.Width(m.listWidth()).Height(m.bodyHeight()).Render(left)

	detailWidth := max(m.width-m.listWidth()-8, 10)
	rightBox := panelStyle.Width(detailWidth).Height(m.bodyHeight()).Render(l.SelectedDetail())
	return lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)
}

func (m Model) formView() string {
	f := m.app.Form()
	v := f.View()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Add item"))
	b.WriteString("  " + mutedStyle.Render(v.Status.String()))
	b.WriteString("\n\n")
	for _, fv := range v.Fields {
		prefix := "  "
		label := labelStyle.Render(fv.Label + ":")
		value := fv.Value
		if fv.Focused {
			prefix = focusStyle.Render("> ")
			if v.Status == form.Editing {
				value += "▏"
			}
		}
		fmt.Fprintf(&b, "%s%s %s\n", prefix, label, value)
	}

	border := formViewingBorder
	if v.Status == form.Editing {
		border = formEditingBorder
	}
	return panelStyle.BorderForeground(border).Width(m.width - 4).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) footer() string {
	bindings := normalKeys
	if m.app.Mode() == app.Adding {
		bindings = formKeys
	}
	hv := m.help.View(bindings)
	if n := m.app.Notice(); n != "" {
		style := successStyle
		if n != app.NoticeAdded {
			style = errorStyle
		}
		return style.Render(n) + "\n" + hv
	}
	return hv
}
