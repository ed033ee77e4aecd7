package app

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songbook/internal/app/handler"
	"github.com/llehouerou/songbook/internal/keymap"
	"github.com/llehouerou/songbook/internal/ui/textfield"
)

// handleSearchKey edits the search field. Every typed character re-runs the
// search; Enter runs it once more and returns to browsing.
func (m *Model) handleSearchKey(msg tea.KeyMsg) handler.Result {
	if m.searchKeys.Resolve(msg.String()) == keymap.ActionSubmit {
		m.refreshMatching(m.search.Text())
		m.search.Submit()
		m.search.SetMode(textfield.Normal)
		m.mode = ModeBrowsing
		return handler.HandledNoCmd
	}

	inserted, handled := editField(&m.search, msg, unicode.IsPrint)
	if inserted {
		m.refreshMatching(m.search.Text())
	}
	if !handled {
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}
