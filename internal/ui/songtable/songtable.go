// Package songtable lays out songs as a bubbles table.
package songtable

import (
	"github.com/charmbracelet/bubbles/table"

	"github.com/llehouerou/songbook/internal/library"
	"github.com/llehouerou/songbook/internal/ui/render"
	"github.com/llehouerou/songbook/internal/ui/styles"
)

// Marker flags the selected row.
const Marker = ">>"

const (
	markerWidth = 2
	cellPadding = 2 // table.DefaultStyles pads cells by one column each side
)

type column struct {
	title string
	pct   int
}

var columns = []column{
	{"Title", 20},
	{"Artist", 20},
	{"Album", 30},
	{"Year", 10},
	{"Media Type", 20},
}

// Columns returns the marker column followed by the five song columns,
// sharing width by fixed percentages.
func Columns(width int) []table.Column {
	avail := max(width-markerWidth-cellPadding*(len(columns)+1), len(columns))

	cols := make([]table.Column, 0, len(columns)+1)
	cols = append(cols, table.Column{Title: "", Width: markerWidth})

	used := 0
	for i, c := range columns {
		w := avail * c.pct / 100
		if i == len(columns)-1 {
			w = avail - used
		}
		w = max(w, 1)
		used += w
		cols = append(cols, table.Column{Title: c.title, Width: w})
	}
	return cols
}

// Rows converts songs to table rows, marking the selected one.
func Rows(songs []library.Song, selected int) []table.Row {
	rows := make([]table.Row, len(songs))
	for i, s := range songs {
		marker := ""
		if i == selected {
			marker = Marker
		}
		rows[i] = table.Row{
			marker,
			render.Sanitize(s.Title),
			render.Sanitize(s.Artist),
			render.Sanitize(s.Album),
			s.YearString(),
			render.Sanitize(s.MediaType),
		}
	}
	return rows
}

// New builds a table sized to width x height with the cursor on selected.
func New(songs []library.Song, selected, width, height int) table.Model {
	t := table.New(
		table.WithColumns(Columns(width)),
		table.WithRows(Rows(songs, selected)),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = styles.T().S().TableHeader.Padding(0, 1)
	s.Selected = styles.T().S().SelectedRow
	t.SetStyles(s)

	if len(songs) > 0 {
		t.SetCursor(selected)
	}
	return t
}

// View renders the table.
func View(songs []library.Song, selected, width, height int) string {
	t := New(songs, selected, width, height)
	return t.View()
}
