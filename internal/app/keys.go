package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songbook/internal/app/handler"
	"github.com/llehouerou/songbook/internal/errmsg"
	"github.com/llehouerou/songbook/internal/keymap"
	"github.com/llehouerou/songbook/internal/ui/textfield"
)

// handleKey routes a key press according to the current mode.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	var handlers []handler.Handler

	switch m.mode {
	case ModeBrowsing:
		handlers = []handler.Handler{m.handleBrowseKey}
	case ModeSearching:
		handlers = []handler.Handler{m.handleCancelKey, m.handleSearchKey}
	case ModeCreating, ModeEditing:
		handlers = []handler.Handler{m.handleCancelKey, m.handleFormKey}
	case ModeConfirmingDelete:
		handlers = []handler.Handler{m.handleCancelKey, m.handleDeleteKey}
	case ModeExiting:
		return tea.Quit
	}

	_, cmd := handler.Chain(msg, handlers...)
	return cmd
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) handler.Result {
	switch m.browseKeys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		m.mode = ModeExiting
		return handler.Handled(tea.Quit)
	case keymap.ActionSearch:
		m.search.SetMode(textfield.Editing)
		m.mode = ModeSearching
	case keymap.ActionNew:
		m.startCreate()
	case keymap.ActionEdit:
		m.startEdit()
	case keymap.ActionDelete:
		m.mode = ModeConfirmingDelete
	case keymap.ActionMoveUp:
		m.moveSelection(-1)
	case keymap.ActionMoveDown:
		m.moveSelection(1)
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// captureKeys returns the bindings of the current capturing mode.
func (m *Model) captureKeys() *keymap.Resolver {
	switch m.mode {
	case ModeSearching:
		return m.searchKeys
	case ModeCreating, ModeEditing:
		return m.formKeys
	default:
		return m.deleteKeys
	}
}

// handleCancelKey leaves any input mode on Cancel. Typed text is kept.
func (m *Model) handleCancelKey(msg tea.KeyMsg) handler.Result {
	if m.captureKeys().Resolve(msg.String()) != keymap.ActionCancel {
		return handler.NotHandled
	}
	m.search.SetMode(textfield.Normal)
	m.create.SetAllModes(textfield.Normal)
	m.edit.SetAllModes(textfield.Normal)
	m.mode = ModeBrowsing
	return handler.HandledNoCmd
}

func (m *Model) handleDeleteKey(msg tea.KeyMsg) handler.Result {
	if m.deleteKeys.Resolve(msg.String()) != keymap.ActionConfirm {
		// The confirmation swallows every other key.
		return handler.HandledNoCmd
	}

	song, err := ResolveSelection(m.songs, m.selected)
	if err != nil {
		m.reportError(errmsg.OpSongSelect, err)
		m.startCreate()
		return handler.HandledNoCmd
	}

	m.deleteSong(song)
	m.mode = ModeBrowsing
	m.refreshAll()
	return handler.HandledNoCmd
}

func (m *Model) startCreate() {
	m.create.EnsureFocus()
	m.mode = ModeCreating
}

// startEdit opens the edit form on the selected song. Without a usable
// selection it falls back to the create form.
func (m *Model) startEdit() {
	song, err := ResolveSelection(m.songs, m.selected)
	if err != nil {
		m.reportError(errmsg.OpSongSelect, err)
		m.startCreate()
		return
	}

	m.edit.ClearAll()
	m.edit.PopulateFrom(song)
	m.edit.EnsureFocus()
	m.mode = ModeEditing
}

// moveSelection moves the highlighted row by delta, wrapping at both ends.
func (m *Model) moveSelection(delta int) {
	n := len(m.songs)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
}

// editField applies a text-editing key to f. Runes rejected by accept are
// dropped. inserted reports whether any rune was added.
func editField(f *textfield.Model, msg tea.KeyMsg, accept func(rune) bool) (inserted, handled bool) {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if msg.Alt {
			return false, true
		}
		for _, r := range msg.Runes {
			if accept(r) {
				f.Insert(r)
				inserted = true
			}
		}
		return inserted, true
	case tea.KeyBackspace:
		f.DeleteBackward()
		return false, true
	case tea.KeyLeft:
		f.MoveLeft()
		return false, true
	case tea.KeyRight:
		f.MoveRight()
		return false, true
	}
	return false, false
}
