package app

import (
	"errors"
	"fmt"

	"github.com/llehouerou/songbook/internal/library"
)

// Errors returned by ResolveSelection.
var (
	ErrEmptyResultSet      = errors.New("no songs to select")
	ErrRowOutOfRange       = errors.New("selected row out of range")
	ErrPlaceholderSelected = errors.New("selected row is an error placeholder")
)

// ResolveSelection returns the song at row. Placeholder rows are refused so
// their ids never reach Update or Delete.
func ResolveSelection(songs []library.Song, row int) (library.Song, error) {
	if len(songs) == 0 {
		return library.Song{}, ErrEmptyResultSet
	}
	if row < 0 || row >= len(songs) {
		return library.Song{}, fmt.Errorf("%w: row %d of %d", ErrRowOutOfRange, row, len(songs))
	}
	s := songs[row]
	if s.IsPlaceholder() {
		return library.Song{}, ErrPlaceholderSelected
	}
	return s, nil
}
