package textfield

import (
	"slices"
	"testing"
)

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Insert(r)
	}
}

func TestNew(t *testing.T) {
	m := New("Title")

	if m.Label() != "Title" {
		t.Errorf("Label() = %q, want Title", m.Label())
	}
	if m.Text() != "" || m.Cursor() != 0 {
		t.Errorf("new field should be empty, got %q cursor %d", m.Text(), m.Cursor())
	}
	if m.Mode() != Normal {
		t.Errorf("Mode() = %v, want Normal", m.Mode())
	}
	if len(m.History()) != 0 {
		t.Error("new field should have no history")
	}
}

func TestInsert(t *testing.T) {
	m := New("x")
	typeText(&m, "abc")

	if m.Text() != "abc" || m.Cursor() != 3 {
		t.Errorf("got %q cursor %d, want abc cursor 3", m.Text(), m.Cursor())
	}

	m.MoveLeft()
	m.MoveLeft()
	m.Insert('X')
	if m.Text() != "aXbc" || m.Cursor() != 2 {
		t.Errorf("got %q cursor %d, want aXbc cursor 2", m.Text(), m.Cursor())
	}
}

func TestInsert_Multibyte(t *testing.T) {
	m := New("x")
	typeText(&m, "héé")
	m.MoveLeft()
	m.Insert('ß')

	if m.Text() != "héßé" {
		t.Errorf("Text() = %q, want héßé", m.Text())
	}
	if m.Len() != 4 || m.Cursor() != 3 {
		t.Errorf("Len() = %d cursor %d, want 4 and 3", m.Len(), m.Cursor())
	}
}

func TestDeleteBackward(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		lefts      int
		wantText   string
		wantCursor int
	}{
		{"at end", "abc", 0, "ab", 2},
		{"in middle", "abc", 1, "ac", 1},
		{"at start is no-op", "abc", 3, "abc", 0},
		{"empty is no-op", "", 0, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New("x")
			typeText(&m, tt.text)
			for range tt.lefts {
				m.MoveLeft()
			}

			m.DeleteBackward()

			if m.Text() != tt.wantText || m.Cursor() != tt.wantCursor {
				t.Errorf("got %q cursor %d, want %q cursor %d", m.Text(), m.Cursor(), tt.wantText, tt.wantCursor)
			}
		})
	}
}

func TestCursorClamping(t *testing.T) {
	m := New("x")
	typeText(&m, "ab")

	for range 5 {
		m.MoveRight()
	}
	if m.Cursor() != 2 {
		t.Errorf("cursor after moving right past end = %d, want 2", m.Cursor())
	}

	for range 5 {
		m.MoveLeft()
	}
	if m.Cursor() != 0 {
		t.Errorf("cursor after moving left past start = %d, want 0", m.Cursor())
	}

	empty := New("y")
	empty.MoveLeft()
	empty.MoveRight()
	if empty.Cursor() != 0 {
		t.Errorf("cursor on empty field = %d, want 0", empty.Cursor())
	}
}

func TestCursorAlwaysInRange(t *testing.T) {
	m := New("x")
	ops := []func(){
		func() { m.Insert('a') },
		m.MoveLeft,
		m.MoveLeft,
		m.DeleteBackward,
		func() { m.Insert('b') },
		m.MoveRight,
		m.MoveRight,
		m.DeleteBackward,
		m.DeleteBackward,
		m.DeleteBackward,
		m.Submit,
		m.MoveRight,
	}

	for i, op := range ops {
		op()
		if m.Cursor() < 0 || m.Cursor() > m.Len() {
			t.Fatalf("after op %d cursor %d outside [0, %d]", i, m.Cursor(), m.Len())
		}
	}
}

func TestSubmit(t *testing.T) {
	m := New("x")
	m.SetMode(Editing)
	typeText(&m, "first")
	m.Submit()

	if m.Text() != "" || m.Cursor() != 0 {
		t.Errorf("after submit got %q cursor %d, want empty", m.Text(), m.Cursor())
	}
	if m.Mode() != Editing {
		t.Error("Submit should not change the mode")
	}

	typeText(&m, "second")
	m.Submit()
	m.Submit()

	want := []string{"first", "second", ""}
	if got := m.History(); !slices.Equal(got, want) {
		t.Errorf("History() = %q, want %q", got, want)
	}

	last, ok := m.LastSubmitted()
	if !ok || last != "" {
		t.Errorf("LastSubmitted() = %q, %v", last, ok)
	}
}

func TestLastSubmitted_Empty(t *testing.T) {
	m := New("x")
	if _, ok := m.LastSubmitted(); ok {
		t.Error("LastSubmitted() on fresh field should report false")
	}
}

func TestHistoryIsACopy(t *testing.T) {
	m := New("x")
	typeText(&m, "a")
	m.Submit()

	h := m.History()
	h[0] = "mutated"

	if got := m.History()[0]; got != "a" {
		t.Errorf("history changed through returned slice: %q", got)
	}
}

func TestSetTextAndClear(t *testing.T) {
	m := New("x")
	m.SetText("1959")

	if m.Text() != "1959" || m.Cursor() != 4 {
		t.Errorf("after SetText got %q cursor %d", m.Text(), m.Cursor())
	}

	typeText(&m, "x")
	m.Submit()
	m.SetText("abc")
	m.Clear()

	if m.Text() != "" || m.Cursor() != 0 {
		t.Errorf("after Clear got %q cursor %d", m.Text(), m.Cursor())
	}
	if len(m.History()) != 1 {
		t.Error("Clear should keep history")
	}
}

func TestModeAndView(t *testing.T) {
	m := New("Artist")
	typeText(&m, "Nina")
	m.MoveLeft()

	v := m.View()
	if v.Editing {
		t.Error("View().Editing = true for Normal field")
	}

	m.SetMode(Editing)
	v = m.View()
	want := View{Label: "Artist", Text: "Nina", Cursor: 3, Editing: true}
	if v != want {
		t.Errorf("View() = %+v, want %+v", v, want)
	}
	if !m.IsEditing() || m.Mode().String() != "Editing" {
		t.Errorf("mode = %v", m.Mode())
	}
}
