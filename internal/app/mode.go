package app

// Mode is the top-level application state.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeSearching
	ModeCreating
	ModeEditing
	ModeConfirmingDelete
	ModeExiting
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "Browsing"
	case ModeSearching:
		return "Searching"
	case ModeCreating:
		return "Creating"
	case ModeEditing:
		return "Editing"
	case ModeConfirmingDelete:
		return "ConfirmingDelete"
	case ModeExiting:
		return "Exiting"
	default:
		return "Unknown"
	}
}

// Captures reports whether keystrokes in this mode go to an input
// (search field, form or confirmation) instead of the browse bindings.
func (m Mode) Captures() bool {
	switch m {
	case ModeSearching, ModeCreating, ModeEditing, ModeConfirmingDelete:
		return true
	default:
		return false
	}
}
