// Package library stores and queries song records.
package library

import "strconv"

// Song is one catalogue entry.
type Song struct {
	ID          int64
	Title       string
	Artist      string
	Album       string
	ReleaseYear int
	MediaType   string
}

// Placeholder records shown in place of the result set when a query fails.
var (
	LoadFailure = Song{
		ID:          404,
		Title:       " Error",
		Artist:      "Displaying",
		Album:       "Songs. ",
		ReleaseYear: 404,
		MediaType:   "Error ",
	}
	SearchFailure = Song{
		ID:          500,
		Title:       " Error",
		Artist:      "Searching",
		Album:       "Songs. ",
		ReleaseYear: 500,
		MediaType:   "Error ",
	}
)

// IsPlaceholder reports whether s is one of the failure placeholders.
func (s Song) IsPlaceholder() bool {
	return s == LoadFailure || s == SearchFailure
}

// YearString returns the release year in decimal.
func (s Song) YearString() string {
	return strconv.Itoa(s.ReleaseYear)
}
