//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextBrowse},
		{ActionMoveUp, []string{"k", "up"}, "Up", ContextBrowse},
		{ActionMoveDown, []string{"j", "down"}, "Down", ContextBrowse},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"k", ActionMoveUp},
		{"up", ActionMoveUp},
		{"j", ActionMoveDown},
		{"down", ActionMoveDown},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := r.Resolve(tt.key)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextBrowse},
		{ActionSearch, []string{"/"}, "Search", ContextBrowse},
	})

	if keys := r.KeysFor(ActionQuit); !slices.Equal(keys, []string{"q", "ctrl+c"}) {
		t.Errorf("KeysFor(quit) = %v", keys)
	}
	if keys := r.KeysFor(ActionSearch); !slices.Equal(keys, []string{"/"}) {
		t.Errorf("KeysFor(search) = %v", keys)
	}
	if keys := r.KeysFor(Action("unknown")); keys != nil {
		t.Errorf("KeysFor(unknown) = %v, want nil", keys)
	}
}

func TestResolver_DeduplicatesKeys(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionCancel, []string{"esc"}, "Cancel", ContextSearch},
		{ActionCancel, []string{"esc"}, "Cancel", ContextForm},
		{ActionCancel, []string{"esc"}, "Cancel", ContextDelete},
	})

	if keys := r.KeysFor(ActionCancel); len(keys) != 1 {
		t.Errorf("expected 'esc' once after deduplication, got %v", keys)
	}
}

func TestForContext_Browse(t *testing.T) {
	r := ForContext(ContextBrowse)

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"/", ActionSearch},
		{"n", ActionNew},
		{"e", ActionEdit},
		{"d", ActionDelete},
		{"up", ActionMoveUp},
		{"k", ActionMoveUp},
		{"down", ActionMoveDown},
		{"j", ActionMoveDown},
		{"Y", ""},
		{"enter", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.Resolve(tt.key); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestForContext_DeleteOnlyConfirmsOnUppercaseY(t *testing.T) {
	r := ForContext(ContextDelete)

	if got := r.Resolve("Y"); got != ActionConfirm {
		t.Errorf("Resolve(Y) = %q, want confirm", got)
	}
	if got := r.Resolve("y"); got != "" {
		t.Errorf("Resolve(y) = %q, want unbound", got)
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"no duplicates", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"with duplicates", []string{"a", "b", "a", "c", "b"}, []string{"a", "b", "c"}},
		{"all duplicates", []string{"a", "a", "a"}, []string{"a"}},
		{"empty slice", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := dedupe(tt.input); !slices.Equal(result, tt.expected) {
				t.Errorf("dedupe(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestForContext_InputModes(t *testing.T) {
	tests := []struct {
		context string
		key     string
		want    Action
	}{
		{ContextSearch, "esc", ActionCancel},
		{ContextSearch, "enter", ActionSubmit},
		{ContextSearch, "tab", ""},
		{ContextSearch, "q", ""},
		{ContextForm, "esc", ActionCancel},
		{ContextForm, "tab", ActionNextField},
		{ContextForm, "enter", ActionSubmit},
		{ContextForm, "n", ""},
		{ContextDelete, "esc", ActionCancel},
	}

	for _, tt := range tests {
		t.Run(tt.context+"/"+tt.key, func(t *testing.T) {
			if got := ForContext(tt.context).Resolve(tt.key); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
