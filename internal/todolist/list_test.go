package todolist

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tuido/internal/model"
)

func rec(id string) model.Record {
	return model.Record{ID: id, Title: "title " + id, Description: "desc " + id}
}

func listOf(ids ...string) *List {
	l := New()
	for _, id := range ids {
		l.Insert(rec(id))
	}
	return l
}

func ids(l *List) []string {
	var out []string
	for _, it := range l.Items() {
		out = append(out, it.ID)
	}
	return out
}

func requireSelected(t *testing.T, l *List, want int) {
	t.Helper()
	got, ok := l.Selected()
	if want < 0 {
		require.False(t, ok, "expected no selection, got %d", got)
		return
	}
	require.True(t, ok, "expected selection %d, got none", want)
	require.Equal(t, want, got)
}

type memSaver struct {
	data []byte
	err  error
}

func (m *memSaver) Save(b []byte) error {
	if m.err != nil {
		return m.err
	}
	m.data = b
	return nil
}

func TestLoadEmpty(t *testing.T) {
	for _, in := range []string{"", "  \n", "[]", "null"} {
		l := listOf("stale")
		l.SelectFirst()
		require.NoError(t, l.Load([]byte(in)), "input %q", in)
		require.Zero(t, l.Len())
		requireSelected(t, l, -1)
	}
}

func TestLoadMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":    `{{`,
		"not a list":  `{"id":"1"}`,
		"unknown key": `[{"id":"1","title":"t","description":"d","completed":false,"status":"Pending","x":1}]`,
		"missing key": `[{"id":"1","title":"t","description":"d","completed":false}]`,
		"bad status":  `[{"id":"1","title":"t","description":"d","completed":false,"status":"Nope"}]`,
		"duplicate":   `[{"id":"1","title":"t","description":"d","completed":false,"status":"Pending"},{"id":"1","title":"u","description":"e","completed":true,"status":"Completed"}]`,
		"trailing":    `[] []`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			err := New().Load([]byte(in))
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	l := New()
	l.Insert(model.Record{ID: "a", Title: "Buy milk", Description: "2L", Status: model.Pending})
	l.Insert(model.Record{ID: "b", Title: "Ship", Description: "v1 ✓", Completed: true, Status: model.Completed})
	l.Insert(model.Record{ID: "c", Title: "", Description: "", Status: model.InProgress})

	s := &memSaver{}
	require.NoError(t, l.Save(s))

	back := New()
	require.NoError(t, back.Load(s.data))
	if diff := cmp.Diff(l.Items(), back.Items()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveError(t *testing.T) {
	boom := errors.New("disk full")
	err := listOf("a").Save(&memSaver{err: boom})
	require.ErrorIs(t, err, boom)
}

func TestNavigation(t *testing.T) {
	l := listOf("a", "b", "c")
	requireSelected(t, l, -1)

	l.SelectNext()
	requireSelected(t, l, 0)
	l.SelectPrevious()
	requireSelected(t, l, 0)
	l.SelectNext()
	l.SelectNext()
	l.SelectNext()
	requireSelected(t, l, 2)
	l.SelectFirst()
	requireSelected(t, l, 0)
	l.SelectLast()
	requireSelected(t, l, 2)
	l.SelectNone()
	requireSelected(t, l, -1)
	l.SelectPrevious()
	requireSelected(t, l, 2)
}

func TestNavigationEmpty(t *testing.T) {
	l := New()
	for _, op := range []func(){l.SelectNext, l.SelectPrevious, l.SelectFirst, l.SelectLast} {
		op()
		requireSelected(t, l, -1)
	}
	l.Select(3)
	requireSelected(t, l, -1)
}

func TestNavigationStaysInBounds(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for n := 0; n < 5; n++ {
		var names []string
		for i := 0; i < n; i++ {
			names = append(names, fmt.Sprint(i))
		}
		l := listOf(names...)
		ops := []func(){l.SelectNone, l.SelectPrevious, l.SelectNext, l.SelectFirst, l.SelectLast}
		for step := 0; step < 200; step++ {
			ops[r.Intn(len(ops))]()
			i, ok := l.Selected()
			if n == 0 {
				require.False(t, ok)
				continue
			}
			if ok {
				require.GreaterOrEqual(t, i, 0)
				require.Less(t, i, n)
			}
		}
	}
}

func TestToggleCompleted(t *testing.T) {
	l := listOf("a", "b")
	l.ToggleCompleted() // nothing selected
	for _, it := range l.Items() {
		require.False(t, it.Completed)
	}

	l.SelectFirst()
	l.ToggleCompleted()
	items := l.Items()
	require.True(t, items[0].Completed)
	require.False(t, items[1].Completed)
	requireSelected(t, l, 0)

	l.ToggleCompleted()
	require.False(t, l.Items()[0].Completed)
}

func TestRemoveSelected(t *testing.T) {
	t.Run("none selected", func(t *testing.T) {
		l := listOf("a", "b")
		l.RemoveSelected()
		require.Equal(t, []string{"a", "b"}, ids(l))
		require.False(t, l.CanUndo())
	})
	t.Run("middle keeps index", func(t *testing.T) {
		l := listOf("a", "b", "c")
		l.Select(1)
		l.RemoveSelected()
		require.Equal(t, []string{"a", "c"}, ids(l))
		requireSelected(t, l, 1)
	})
	t.Run("last moves up", func(t *testing.T) {
		l := listOf("a", "b", "c")
		l.SelectLast()
		l.RemoveSelected()
		require.Equal(t, []string{"a", "b"}, ids(l))
		requireSelected(t, l, 1)
	})
	t.Run("only item clears", func(t *testing.T) {
		l := listOf("a")
		l.SelectFirst()
		l.RemoveSelected()
		require.Zero(t, l.Len())
		requireSelected(t, l, -1)
	})
	t.Run("drain", func(t *testing.T) {
		l := listOf("a", "b", "c", "d")
		l.SelectFirst()
		for l.Len() > 0 {
			l.RemoveSelected()
			if l.Len() > 0 {
				requireSelected(t, l, 0)
			}
		}
		requireSelected(t, l, -1)
	})
}

func TestUndoRemove(t *testing.T) {
	l := listOf("a", "b", "c")
	l.Select(1)
	l.RemoveSelected()
	require.True(t, l.CanUndo())

	l.SelectFirst()
	l.UndoRemove()
	require.Equal(t, []string{"a", "b", "c"}, ids(l))
	requireSelected(t, l, 1)
	require.False(t, l.CanUndo())

	// single level only
	l.UndoRemove()
	require.Equal(t, 3, l.Len())
}

func TestUndoAfterShrink(t *testing.T) {
	l := listOf("a", "b", "c")
	l.SelectLast()
	l.RemoveSelected()
	require.NoError(t, l.Load([]byte(`[]`)))
	require.False(t, l.CanUndo(), "load drops undo history")

	l = listOf("a", "b", "c")
	l.SelectLast()
	l.RemoveSelected() // c, selection -> b
	l.undo.index = 10
	l.UndoRemove()
	require.Equal(t, []string{"a", "b", "c"}, ids(l))
	requireSelected(t, l, 2)
}

func TestInsertKeepsSelection(t *testing.T) {
	l := listOf("a")
	l.Insert(rec("b"))
	requireSelected(t, l, -1)
	l.SelectFirst()
	l.Insert(rec("c"))
	requireSelected(t, l, 0)
	require.True(t, l.Has("c"))
	require.False(t, l.Has("z"))
}

func TestItemsIsACopy(t *testing.T) {
	l := listOf("a")
	items := l.Items()
	items[0].Title = "changed"
	require.Equal(t, "title a", l.Items()[0].Title)
}

func TestStats(t *testing.T) {
	l := listOf("a", "b", "c")
	l.Select(2)
	l.ToggleCompleted()
	done, pending := l.Stats()
	require.Equal(t, 1, done)
	require.Equal(t, 2, pending)
}
