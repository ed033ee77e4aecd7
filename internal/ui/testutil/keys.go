package testutil

import tea "github.com/charmbracelet/bubbletea"

var specialKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"tab":       tea.KeyTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"backspace": tea.KeyBackspace,
	"ctrl+c":    tea.KeyCtrlC,
}

// Key builds the tea.KeyMsg whose String() is key. Names of special keys
// map to their key type, "space" to a space, anything else to runes.
func Key(key string) tea.KeyMsg {
	if t, ok := specialKeys[key]; ok {
		return tea.KeyMsg{Type: t}
	}
	if key == "space" || key == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// RuneKey builds the key press for a single typed rune.
func RuneKey(r rune) tea.KeyMsg {
	if r == ' ' {
		return Key("space")
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}
