// Package frame draws the whole screen from a read-only snapshot of the
// application state.
package frame

import (
	"github.com/llehouerou/songbook/internal/library"
	"github.com/llehouerou/songbook/internal/ui/textfield"
)

// Popup selects the overlay drawn above the table.
type Popup int

const (
	PopupNone Popup = iota
	PopupForm
	PopupDelete
)

// Form is the display state of a create or edit popup.
type Form struct {
	Title  string
	Fields []textfield.View
}

// State is everything Render needs. It is built fresh for every frame.
type State struct {
	Width, Height int

	Songs    []library.Song
	Selected int

	Search textfield.View

	Popup        Popup
	Form         Form
	DeleteTarget string

	Status      string
	StatusIsErr bool

	// Debug is shown under the footer when non-empty.
	Debug string
}
