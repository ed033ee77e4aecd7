package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/songbook/internal/library"
)

func TestResolveSelection(t *testing.T) {
	songs := catalogue()

	tests := []struct {
		name    string
		songs   []library.Song
		row     int
		wantID  int64
		wantErr error
	}{
		{"first row", songs, 0, 1, nil},
		{"last row", songs, 2, 3, nil},
		{"empty set", nil, 0, 0, ErrEmptyResultSet},
		{"negative row", songs, -1, 0, ErrRowOutOfRange},
		{"past the end", songs, 3, 0, ErrRowOutOfRange},
		{"load placeholder", []library.Song{library.LoadFailure}, 0, 0, ErrPlaceholderSelected},
		{"search placeholder", []library.Song{library.SearchFailure}, 0, 0, ErrPlaceholderSelected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSelection(tt.songs, tt.row)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, library.Song{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestResolveSelection_OutOfRangeMessage(t *testing.T) {
	_, err := ResolveSelection(catalogue(), 7)

	assert.EqualError(t, err, "selected row out of range: row 7 of 3")
}
