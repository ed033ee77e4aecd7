package app

import (
	"fmt"

	"github.com/llehouerou/songbook/internal/ui/frame"
	"github.com/llehouerou/songbook/internal/ui/songform"
)

// View implements tea.Model.
func (m *Model) View() string {
	return frame.Render(m.Snapshot())
}

// Snapshot copies the state the renderer needs.
func (m *Model) Snapshot() frame.State {
	s := frame.State{
		Width:       m.Width(),
		Height:      m.Height(),
		Songs:       m.songs,
		Selected:    m.selected,
		Search:      m.search.View(),
		Status:      m.status.Text,
		StatusIsErr: m.status.IsErr,
	}

	switch m.mode {
	case ModeCreating, ModeEditing:
		form := m.activeForm()
		s.Popup = frame.PopupForm
		s.Form = frame.Form{Title: form.Kind().Title(), Fields: form.Views()}
	case ModeConfirmingDelete:
		s.Popup = frame.PopupDelete
		if song, err := ResolveSelection(m.songs, m.selected); err == nil {
			s.DeleteTarget = fmt.Sprintf("%s - %s (%s)", song.Title, song.Artist, song.Album)
		}
	}

	if m.debug {
		s.Debug = m.debugLine()
	}
	return s
}

func (m *Model) debugLine() string {
	return fmt.Sprintf("mode=%s capture=%t row=%d/%d search=%s create=%s edit=%s",
		m.mode, m.Capturing(), m.selected, len(m.songs),
		m.search.Mode(), focusName(&m.create), focusName(&m.edit))
}

func focusName(f *songform.Form) string {
	if field, ok := f.ActiveField(); ok {
		return field.String()
	}
	return "-"
}
