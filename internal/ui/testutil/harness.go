package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a tea.Model for testing, providing helpers to simulate
// user interactions and inspect the view.
type Harness struct {
	model tea.Model
}

// NewHarness runs the model's Init. Its command is not executed.
func NewHarness(m tea.Model) *Harness {
	m.Init()
	return &Harness{model: m}
}

// View returns the model's rendered content.
func (h *Harness) View() string {
	return h.model.View()
}

// SendMsg sends any message to the model and returns the resulting command.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// Resize sends a window size message.
func (h *Harness) Resize(width, height int) tea.Cmd {
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// SendKey sends one key, named the way tea.KeyMsg.String prints it.
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(Key(key))
}

// Type sends each rune of s as its own key press.
func (h *Harness) Type(s string) {
	for _, r := range s {
		h.SendMsg(RuneKey(r))
	}
}

// SendSpecialKey sends a special key (enter, escape, tab, etc.).
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// SendEnter sends the enter key.
func (h *Harness) SendEnter() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEnter)
}

// SendEscape sends the escape key.
func (h *Harness) SendEscape() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEscape)
}

// SendTab sends the tab key.
func (h *Harness) SendTab() tea.Cmd {
	return h.SendSpecialKey(tea.KeyTab)
}

// SendUp sends the up arrow key.
func (h *Harness) SendUp() tea.Cmd {
	return h.SendSpecialKey(tea.KeyUp)
}

// SendDown sends the down arrow key.
func (h *Harness) SendDown() tea.Cmd {
	return h.SendSpecialKey(tea.KeyDown)
}

// IsQuit reports whether cmd produces tea.QuitMsg.
func IsQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// ViewContains checks if the model's view contains the given substring.
func (h *Harness) ViewContains(substr string) bool {
	return ContainsLine(StripANSI(h.View()), substr)
}

// AssertViewContains returns an error message if view doesn't contain substr.
func (h *Harness) AssertViewContains(substr string) string {
	return AssertContains(h.View(), substr)
}

// AssertViewNotContains returns an error message if view contains substr.
func (h *Harness) AssertViewNotContains(substr string) string {
	return AssertNotContains(h.View(), substr)
}
