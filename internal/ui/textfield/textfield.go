// Package textfield provides a single-line text buffer with a cursor, an
// input mode and a log of submitted values.
package textfield

import "slices"

// Mode says whether a field is accepting keystrokes.
type Mode int

const (
	Normal Mode = iota
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "Editing"
	}
	return "Normal"
}

// Model is one editable field. The zero value is an unlabeled empty field.
type Model struct {
	label   string
	buf     []rune
	cursor  int
	mode    Mode
	history []string
}

// New creates an empty field in Normal mode.
func New(label string) Model {
	return Model{label: label}
}

// Label returns the field's fixed caption.
func (m *Model) Label() string { return m.label }

// Text returns the current buffer.
func (m *Model) Text() string { return string(m.buf) }

// Len returns the buffer length in runes.
func (m *Model) Len() int { return len(m.buf) }

// Cursor returns the cursor position as a rune offset.
func (m *Model) Cursor() int { return m.cursor }

// Mode returns the current input mode.
func (m *Model) Mode() Mode { return m.mode }

// IsEditing reports whether the field is in Editing mode.
func (m *Model) IsEditing() bool { return m.mode == Editing }

// SetMode changes the input mode. The buffer is untouched.
func (m *Model) SetMode(mode Mode) { m.mode = mode }

// Insert puts r at the cursor and advances the cursor.
func (m *Model) Insert(r rune) {
	m.buf = slices.Insert(m.buf, m.cursor, r)
	m.cursor++
}

// DeleteBackward removes the rune left of the cursor.
func (m *Model) DeleteBackward() {
	if m.cursor == 0 {
		return
	}
	m.buf = slices.Delete(m.buf, m.cursor-1, m.cursor)
	m.cursor--
}

// MoveLeft moves the cursor one rune left, stopping at 0.
func (m *Model) MoveLeft() {
	m.cursor = m.clamp(m.cursor - 1)
}

// MoveRight moves the cursor one rune right, stopping at the end.
func (m *Model) MoveRight() {
	m.cursor = m.clamp(m.cursor + 1)
}

// SetText replaces the buffer and puts the cursor at the end.
func (m *Model) SetText(s string) {
	m.buf = []rune(s)
	m.cursor = len(m.buf)
}

// Clear empties the buffer. History is kept.
func (m *Model) Clear() {
	m.buf = nil
	m.cursor = 0
}

// Submit appends the buffer to the history, then clears it.
func (m *Model) Submit() {
	m.history = append(m.history, string(m.buf))
	m.Clear()
}

// History returns the submitted values, oldest first.
func (m *Model) History() []string {
	return slices.Clone(m.history)
}

// LastSubmitted returns the most recent submitted value.
func (m *Model) LastSubmitted() (string, bool) {
	if len(m.history) == 0 {
		return "", false
	}
	return m.history[len(m.history)-1], true
}

func (m *Model) clamp(pos int) int {
	return max(0, min(pos, len(m.buf)))
}

// View is a read-only copy of what a renderer needs.
type View struct {
	Label   string
	Text    string
	Cursor  int
	Editing bool
}

// View returns the display state.
func (m *Model) View() View {
	return View{
		Label:   m.label,
		Text:    string(m.buf),
		Cursor:  m.cursor,
		Editing: m.mode == Editing,
	}
}
