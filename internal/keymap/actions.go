// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Browse actions
	ActionQuit     Action = "quit"
	ActionSearch   Action = "search"
	ActionNew      Action = "new"
	ActionEdit     Action = "edit"
	ActionDelete   Action = "delete"
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"

	// Actions inside input popups
	ActionCancel    Action = "cancel"     // esc - leave any input mode
	ActionSubmit    Action = "submit"     // enter
	ActionNextField Action = "next_field" // tab
	ActionConfirm   Action = "confirm"    // Y - confirm deletion
)
