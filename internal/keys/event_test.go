package keys

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestEventString(t *testing.T) {
	cases := []struct {
		ev   Event
		want string
	}{
		{Rune('a'), "a"},
		{Rune('G'), "G"},
		{Rune(' '), "space"},
		{Ctrl('s'), "ctrl+s"},
		{Ctrl('S'), "ctrl+s"},
		{Key(CodeEnter), "enter"},
		{Key(CodeBackTab), "shift+tab"},
		{Event{Code: CodeRune, Rune: 'x', Mods: ModAlt}, "alt+x"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.ev.String())
	}
}

func TestPrintable(t *testing.T) {
	require.True(t, Rune('a').Printable())
	require.True(t, Event{Code: CodeRune, Rune: 'A', Mods: ModShift}.Printable())
	require.False(t, Ctrl('a').Printable())
	require.False(t, Event{Code: CodeRune, Rune: 'a', Mods: ModAlt}.Printable())
	require.False(t, Key(CodeEnter).Printable())
	require.False(t, Rune('\x07').Printable())
}

func TestMatches(t *testing.T) {
	require.True(t, Event{Code: CodeRune, Rune: 'D', Mods: ModShift}.Matches(Rune('D')))
	require.False(t, Rune('s').Matches(Submit))
	require.True(t, Ctrl('s').Matches(Submit))
	require.True(t, Rune('q').Any("ctrl+c", "q"))
	require.False(t, Rune('w').Any("ctrl+c", "q"))
}

func TestFromTea(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want []Event
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, []Event{Rune('a')}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")}, []Event{Rune('h'), Rune('i')}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []Event{Rune(' ')}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []Event{Key(CodeEnter)}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []Event{Key(CodeTab)}},
		{"backtab", tea.KeyMsg{Type: tea.KeyShiftTab}, []Event{{Code: CodeBackTab, Mods: ModShift}}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, []Event{Key(CodeEsc)}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []Event{Key(CodeBackspace)}},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, []Event{Ctrl('s')}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, []Event{Ctrl('c')}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, []Event{{Code: CodeRune, Rune: 'x', Mods: ModAlt}}},
		{"unsupported", tea.KeyMsg{Type: tea.KeyPgUp}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, FromTea(c.msg))
		})
	}
}

func TestFromTeaNamesAgree(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'a'}},
		{Type: tea.KeyCtrlS},
		{Type: tea.KeyEnter},
		{Type: tea.KeyShiftTab},
		{Type: tea.KeyUp},
	} {
		evs := FromTea(msg)
		require.Len(t, evs, 1)
		require.Equal(t, msg.String(), evs[0].String())
	}
}
