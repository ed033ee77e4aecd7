package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songbook/internal/app/handler"
	"github.com/llehouerou/songbook/internal/errmsg"
	"github.com/llehouerou/songbook/internal/keymap"
	"github.com/llehouerou/songbook/internal/ui/songform"
)

// activeForm returns the form for the current mode.
func (m *Model) activeForm() *songform.Form {
	if m.mode == ModeEditing {
		return &m.edit
	}
	return &m.create
}

// handleFormKey routes keys inside the create and edit popups.
func (m *Model) handleFormKey(msg tea.KeyMsg) handler.Result {
	form := m.activeForm()

	switch m.formKeys.Resolve(msg.String()) {
	case keymap.ActionNextField:
		form.Next()
		return handler.HandledNoCmd
	case keymap.ActionSubmit:
		m.submitForm(form)
		return handler.HandledNoCmd
	}

	field, ok := form.ActiveField()
	if !ok {
		return handler.NotHandled
	}
	accept := func(r rune) bool { return songform.AcceptsRune(field, r) }
	if _, handled := editField(form.Field(field), msg, accept); !handled {
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// submitForm saves a complete form and returns to browsing. An incomplete
// create form ignores Enter; an incomplete edit form flushes the focused field.
func (m *Model) submitForm(form *songform.Form) {
	if !form.HasAllFieldsFilled() {
		if form.Kind() == songform.Edit {
			if field, ok := form.ActiveField(); ok {
				form.Field(field).Submit()
			}
		}
		return
	}

	song, err := form.ToSong()
	if err != nil {
		m.reportError(errmsg.OpSongValidate, err)
		return
	}

	if form.Kind() == songform.Edit {
		m.updateSong(form.ID(), song)
	} else {
		m.insertSong(song)
	}

	form.Reset()
	m.mode = ModeBrowsing
	m.refreshAll()
}
