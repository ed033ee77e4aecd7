package keymap

import "strings"

// Contexts group bindings by the input mode they apply to.
const (
	ContextBrowse = "browse"
	ContextSearch = "search"
	ContextForm   = "form"
	ContextDelete = "delete"
)

// Binding maps keys to an action within a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Browse
	{ActionSearch, []string{"/"}, "Search", ContextBrowse},
	{ActionNew, []string{"n"}, "New Song", ContextBrowse},
	{ActionEdit, []string{"e"}, "Edit Song", ContextBrowse},
	{ActionDelete, []string{"d"}, "Delete Song", ContextBrowse},
	{ActionMoveUp, []string{"up", "k"}, "Up", ContextBrowse},
	{ActionMoveDown, []string{"down", "j"}, "Down", ContextBrowse},
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextBrowse},

	// Search field
	{ActionCancel, []string{"esc"}, "Cancel", ContextSearch},
	{ActionSubmit, []string{"enter"}, "Done", ContextSearch},

	// Create and edit forms
	{ActionCancel, []string{"esc"}, "Cancel", ContextForm},
	{ActionNextField, []string{"tab"}, "Next Field", ContextForm},
	{ActionSubmit, []string{"enter"}, "Submit", ContextForm},

	// Delete confirmation
	{ActionCancel, []string{"esc"}, "Cancel", ContextDelete},
	{ActionConfirm, []string{"Y"}, "Yes", ContextDelete},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Hints renders "Description <key>" pairs for a context, skipping bindings
// listed in hide.
func Hints(context string, hide ...Action) string {
	parts := make([]string, 0, len(All))
	for _, b := range ByContext(context) {
		if hidden(b.Action, hide) {
			continue
		}
		parts = append(parts, b.Description+" <"+displayKey(b.Keys[0])+">")
	}
	return strings.Join(parts, "  ")
}

func hidden(a Action, hide []Action) bool {
	for _, h := range hide {
		if h == a {
			return true
		}
	}
	return false
}

func displayKey(key string) string {
	switch key {
	case "esc":
		return "Esc"
	case "enter":
		return "Enter"
	case "tab":
		return "Tab"
	default:
		return key
	}
}
