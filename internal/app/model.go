// Package app implements the root Bubble Tea model: the mode state machine
// that routes keys to the search field, the song forms and the store.
package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/songbook/internal/keymap"
	"github.com/llehouerou/songbook/internal/library"
	"github.com/llehouerou/songbook/internal/logging"
	"github.com/llehouerou/songbook/internal/ui"
	"github.com/llehouerou/songbook/internal/ui/songform"
	"github.com/llehouerou/songbook/internal/ui/textfield"
)

const defaultQueryTimeout = 5 * time.Second

// Options configures a Model.
type Options struct {
	Store        library.Store
	Logger       *logrus.Logger
	QueryTimeout time.Duration
	Debug        bool
}

// Status is the last message shown under the table.
type Status struct {
	Text  string
	IsErr bool
}

// Model is the root application model.
type Model struct {
	ui.Base

	store   library.Store
	log     *logrus.Logger
	timeout time.Duration
	debug   bool

	browseKeys *keymap.Resolver
	searchKeys *keymap.Resolver
	formKeys   *keymap.Resolver
	deleteKeys *keymap.Resolver

	mode     Mode
	selected int
	songs    []library.Song

	search textfield.Model
	create songform.Form
	edit   songform.Form

	status Status
}

// New creates a model in Browsing mode with an empty result set. Init loads
// the songs.
func New(opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	timeout := opts.QueryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}

	return &Model{
		store:      opts.Store,
		log:        log,
		timeout:    timeout,
		debug:      opts.Debug,
		browseKeys: keymap.ForContext(keymap.ContextBrowse),
		searchKeys: keymap.ForContext(keymap.ContextSearch),
		formKeys:   keymap.ForContext(keymap.ContextForm),
		deleteKeys: keymap.ForContext(keymap.ContextDelete),
		mode:       ModeBrowsing,
		search:     textfield.New("Search"),
		create:     songform.New(songform.Create),
		edit:       songform.New(songform.Edit),
	}
}

// Mode returns the current mode.
func (m *Model) Mode() Mode { return m.mode }

// Capturing reports whether keystrokes go to an input rather than the
// browse bindings. It is derived from the mode.
func (m *Model) Capturing() bool { return m.mode.Captures() }

// Selected returns the highlighted row.
func (m *Model) Selected() int { return m.selected }

// Songs returns the current result set.
func (m *Model) Songs() []library.Song { return m.songs }

// Status returns the last status message.
func (m *Model) Status() Status { return m.status }

// SearchField exposes the search field for inspection.
func (m *Model) SearchField() *textfield.Model { return &m.search }

// CreateForm exposes the create form for inspection.
func (m *Model) CreateForm() *songform.Form { return &m.create }

// EditForm exposes the edit form for inspection.
func (m *Model) EditForm() *songform.Form { return &m.edit }

func (m *Model) queryContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), m.timeout)
}
