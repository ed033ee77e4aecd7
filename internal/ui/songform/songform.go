// Package songform groups the five song fields edited in the create and
// edit popups.
package songform

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"github.com/llehouerou/songbook/internal/library"
	"github.com/llehouerou/songbook/internal/ui/textfield"
)

// ErrInvalidYear is returned by ToSong when the year field is not a number.
var ErrInvalidYear = errors.New("year must be a number")

// Field indexes the form's fields in tab order.
type Field int

const (
	FieldTitle Field = iota
	FieldArtist
	FieldAlbum
	FieldYear
	FieldMediaType

	fieldCount
)

var labels = [fieldCount]string{
	FieldTitle:     "Title",
	FieldArtist:    "Artist",
	FieldAlbum:     "Album",
	FieldYear:      "Year",
	FieldMediaType: "Media Type",
}

func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return labels[f]
}

// Kind distinguishes the create popup from the edit popup.
type Kind int

const (
	Create Kind = iota
	Edit
)

// Title returns the popup heading.
func (k Kind) Title() string {
	if k == Edit {
		return "Edit Song"
	}
	return "New Song"
}

// Form holds one field editor per song attribute.
type Form struct {
	kind   Kind
	id     int64
	fields [fieldCount]textfield.Model
}

// New creates an empty form with every field in Normal mode.
func New(kind Kind) Form {
	f := Form{kind: kind}
	for i := range f.fields {
		f.fields[i] = textfield.New(labels[i])
	}
	return f
}

// Kind returns whether this is the create or edit form.
func (f *Form) Kind() Kind { return f.kind }

// ID returns the id of the song being edited, 0 for a new song.
func (f *Form) ID() int64 { return f.id }

// Field returns the editor for one field.
func (f *Form) Field(field Field) *textfield.Model {
	return &f.fields[field]
}

// HasAllFieldsFilled reports whether every buffer is non-empty.
func (f *Form) HasAllFieldsFilled() bool {
	for i := range f.fields {
		if f.fields[i].Len() == 0 {
			return false
		}
	}
	return true
}

// AnyFieldEditing reports whether some field is in Editing mode.
func (f *Form) AnyFieldEditing() bool {
	_, ok := f.ActiveField()
	return ok
}

// ActiveField returns the first field in Editing mode.
func (f *Form) ActiveField() (Field, bool) {
	for i := range f.fields {
		if f.fields[i].IsEditing() {
			return Field(i), true
		}
	}
	return 0, false
}

// SetAllModes puts every field into mode.
func (f *Form) SetAllModes(mode textfield.Mode) {
	for i := range f.fields {
		f.fields[i].SetMode(mode)
	}
}

// Focus makes field the only one in Editing mode.
func (f *Form) Focus(field Field) {
	f.SetAllModes(textfield.Normal)
	f.fields[field].SetMode(textfield.Editing)
}

// EnsureFocus focuses the first field when none is editing.
func (f *Form) EnsureFocus() {
	if !f.AnyFieldEditing() {
		f.Focus(FieldTitle)
	}
}

// Next moves editing to the following field, wrapping from the last to the
// first. With no field editing it focuses the first.
func (f *Form) Next() {
	cur, ok := f.ActiveField()
	if !ok {
		f.Focus(FieldTitle)
		return
	}
	f.Focus(Field(Cycle(int(cur), int(fieldCount))))
}

// Cycle returns the index after i in a ring of n slots.
func Cycle(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i + 1) % n
}

// ClearAll empties every buffer. Modes and history are kept.
func (f *Form) ClearAll() {
	for i := range f.fields {
		f.fields[i].Clear()
	}
}

// PopulateFrom loads s into the buffers and remembers its id.
func (f *Form) PopulateFrom(s library.Song) {
	f.id = s.ID
	f.fields[FieldTitle].SetText(s.Title)
	f.fields[FieldArtist].SetText(s.Artist)
	f.fields[FieldAlbum].SetText(s.Album)
	f.fields[FieldYear].SetText(s.YearString())
	f.fields[FieldMediaType].SetText(s.MediaType)
}

// Reset clears the buffers, forgets the id and returns every field to Normal.
func (f *Form) Reset() {
	f.ClearAll()
	f.id = 0
	f.SetAllModes(textfield.Normal)
}

// AcceptsRune reports whether r may be typed into field.
func AcceptsRune(field Field, r rune) bool {
	if field == FieldYear {
		return r >= '0' && r <= '9'
	}
	return unicode.IsPrint(r)
}

// ToSong validates the year, then submits every field and builds a song from
// the submitted values. On error the buffers are left as they were.
func (f *Form) ToSong() (library.Song, error) {
	year, err := strconv.Atoi(f.fields[FieldYear].Text())
	if err != nil {
		return library.Song{}, fmt.Errorf("%w: %w", ErrInvalidYear, err)
	}

	var values [fieldCount]string
	for i := range f.fields {
		f.fields[i].Submit()
		values[i], _ = f.fields[i].LastSubmitted()
	}

	return library.Song{
		ID:          f.id,
		Title:       values[FieldTitle],
		Artist:      values[FieldArtist],
		Album:       values[FieldAlbum],
		ReleaseYear: year,
		MediaType:   values[FieldMediaType],
	}, nil
}

// Views returns the display state of every field in order.
func (f *Form) Views() []textfield.View {
	views := make([]textfield.View, len(f.fields))
	for i := range f.fields {
		views[i] = f.fields[i].View()
	}
	return views
}
