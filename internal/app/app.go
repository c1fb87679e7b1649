// Package app routes key events to the todo list or the record form
// depending on the application mode.
package app

import (
	"go.uber.org/zap"

	"github.com/idilsaglam/tuido/internal/form"
	"github.com/idilsaglam/tuido/internal/keys"
	"github.com/idilsaglam/tuido/internal/logging"
	"github.com/idilsaglam/tuido/internal/todolist"
)

// Mode selects which component receives key input.
type Mode int

const (
	Normal Mode = iota
	Editing
	Adding
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "Normal"
	case Editing:
		return "Editing"
	case Adding:
		return "Adding"
	}
	return "?"
}

// Notices shown after a rejected or accepted submission.
const (
	NoticeIncomplete = "title and description are required"
	NoticeNoID       = "id is required"
	NoticeDuplicate  = "a record with this id already exists"
	NoticeAdded      = "added"
)

// Result tells the caller what to do after a key was handled.
type Result struct {
	Quit bool
}

// App is the top-level state machine. It is not safe for concurrent use;
// the event loop owns it.
type App struct {
	mode   Mode
	list   *todolist.List
	store  todolist.Saver
	newID  form.IDFunc
	form   *form.RecordForm
	notice string
}

// New returns an App in Normal mode over an already loaded list. A nil
// newID uses form.NewUUID.
func New(list *todolist.List, store todolist.Saver, newID form.IDFunc) *App {
	return &App{
		list:  list,
		store: store,
		newID: newID,
		form:  form.New(newID),
	}
}

func (a *App) Mode() Mode             { return a.mode }
func (a *App) List() *todolist.List   { return a.list }
func (a *App) Form() *form.RecordForm { return a.form }
func (a *App) Notice() string         { return a.notice }

// HandleKey processes one key event to completion. A returned error is a
// storage failure and ends the session.
func (a *App) HandleKey(ev keys.Event) (Result, error) {
	a.notice = ""
	switch a.mode {
	case Adding:
		return a.handleAdding(ev)
	case Editing:
		if ev.Matches(keys.Cancel) {
			a.setMode(Normal)
		}
		return Result{}, nil
	default:
		return a.handleNormal(ev)
	}
}

func (a *App) setMode(m Mode) {
	if a.mode != m {
		logging.Debug("mode change", zap.Stringer("from", a.mode), zap.Stringer("to", m))
	}
	a.mode = m
}

func (a *App) handleNormal(ev keys.Event) (Result, error) {
	l := a.list
	switch Lookup(ev) {
	case CmdQuit:
		if err := l.Save(a.store); err != nil {
			return Result{}, err
		}
		logging.Info("saved on quit", zap.Int("records", l.Len()))
		return Result{Quit: true}, nil
	case CmdAdd:
		a.form = form.New(a.newID)
		a.setMode(Adding)
	case CmdEdit:
		a.setMode(Editing)
	case CmdDeselect:
		l.SelectNone()
	case CmdPrevious:
		l.SelectPrevious()
	case CmdNext:
		l.SelectNext()
	case CmdFirst:
		l.SelectFirst()
	case CmdLast:
		l.SelectLast()
	case CmdToggle:
		l.ToggleCompleted()
	case CmdRemove:
		l.RemoveSelected()
	case CmdUndo:
		l.UndoRemove()
	}
	return Result{}, nil
}

// handleAdding forwards keys to the form. Esc leaves the mode and discards
// whatever was typed.
func (a *App) handleAdding(ev keys.Event) (Result, error) {
	if ev.Matches(keys.Cancel) {
		a.form.Reset()
		a.setMode(Normal)
		return Result{}, nil
	}
	a.form.HandleKey(ev)
	if !a.form.Submitted() {
		return Result{}, nil
	}
	return Result{}, a.submit()
}

// submit consumes a pending submission: a valid record is appended,
// selected and saved; otherwise the form goes back to editing.
func (a *App) submit() error {
	f := a.form
	rec := f.Record()
	switch {
	case !f.IsComplete():
		a.notice = NoticeIncomplete
	case rec.ID == "":
		a.notice = NoticeNoID
	case a.list.Has(rec.ID):
		a.notice = NoticeDuplicate
	}
	if a.notice != "" {
		logging.Debug("submission rejected", zap.String("reason", a.notice))
		f.Reject()
		return nil
	}

	a.list.Insert(rec)
	a.list.SelectLast()
	if err := a.list.Save(a.store); err != nil {
		return err
	}
	logging.Info("record added", zap.String("id", rec.ID))
	f.Reset()
	a.notice = NoticeAdded
	a.setMode(Normal)
	return nil
}
