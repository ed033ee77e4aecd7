// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// SearchBoxHeight is the bordered one-line search field.
	SearchBoxHeight = 1 + BorderHeight

	// MinTableHeight keeps the header and one row visible on tiny terminals.
	MinTableHeight = 2

	// FormPopupWidthPct is the share of the screen width used by song forms.
	FormPopupWidthPct = 60

	// MinFormPopupWidth is the narrowest form popup.
	MinFormPopupWidth = 56
)
