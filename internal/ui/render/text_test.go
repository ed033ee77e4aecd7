package render

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean string unchanged", "Kind of Blue", "Kind of Blue"},
		{"control chars removed", "So\x07 What\x1b", "So What"},
		{"tab kept", "a\tb", "a\tb"},
		{"nbsp becomes space", "A\u00a0Love Supreme", "A Love Supreme"},
		{"invalid byte dropped", "Bj\x80rk", "Bjrk"},
		{"unicode kept", "Sigur Rós", "Sigur Rós"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncation with ellipsis", "hello world", 8, "hello..."},
		{"very short max width", "hello", 3, "..."},
		{"empty string", "", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"padding needed", "hello", 10, "hello     "},
		{"exact width", "hello", 5, "hello"},
		{"already wider", "hello world", 5, "hello world"},
		{"empty string", "", 5, "     "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pad(tt.input, tt.width); got != tt.want {
				t.Errorf("Pad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	got := TruncateAndPad("hello world", 8)
	if len(got) != 8 || !strings.Contains(got, "...") {
		t.Errorf("TruncateAndPad = %q", got)
	}

	got = TruncateAndPad("hi", 8)
	if got != "hi      " {
		t.Errorf("TruncateAndPad = %q", got)
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 20)
	if len(got) != 20 || !strings.HasPrefix(got, "left") || !strings.HasSuffix(got, "right") {
		t.Errorf("Row = %q", got)
	}

	// minimum gap of 1
	if got := Row("left", "right", 5); got != "left right" {
		t.Errorf("Row tight = %q", got)
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		cursor     int
		width      int
		want       string
		wantCursor int
	}{
		{"fits with cursor at end", "abc", 3, 10, "abc", 3},
		{"fits with cursor inside", "abc", 1, 10, "abc", 1},
		{"scrolls to keep end cursor visible", "abcdefgh", 8, 4, "fgh", 3},
		{"cursor at start shows head", "abcdefgh", 0, 4, "abcd", 0},
		{"cursor in middle", "abcdefgh", 5, 4, "cdef", 3},
		{"empty", "", 0, 4, "", 0},
		{"zero width", "abc", 1, 0, "", 0},
		{"cursor clamped", "ab", 9, 10, "ab", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cur := Window(tt.text, tt.cursor, tt.width)
			if got != tt.want || cur != tt.wantCursor {
				t.Errorf("Window(%q, %d, %d) = %q, %d; want %q, %d",
					tt.text, tt.cursor, tt.width, got, cur, tt.want, tt.wantCursor)
			}
		})
	}
}
