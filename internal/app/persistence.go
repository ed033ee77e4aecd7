package app

import (
	"github.com/llehouerou/songbook/internal/errmsg"
	"github.com/llehouerou/songbook/internal/library"
)

// refreshAll replaces the result set with every song.
func (m *Model) refreshAll() {
	ctx, cancel := m.queryContext()
	defer cancel()

	songs, err := m.store.All(ctx)
	if err != nil {
		m.reportError(errmsg.OpSongsLoad, err)
		songs = []library.Song{library.LoadFailure}
	}
	m.replaceSongs(songs)
}

// refreshMatching replaces the result set with the songs matching keyword.
func (m *Model) refreshMatching(keyword string) {
	ctx, cancel := m.queryContext()
	defer cancel()

	songs, err := m.store.Matching(ctx, keyword)
	if err != nil {
		m.log.WithField("keyword", keyword).Debug("search failed")
		m.reportError(errmsg.OpSongsSearch, err)
		songs = []library.Song{library.SearchFailure}
	}
	m.replaceSongs(songs)
}

func (m *Model) replaceSongs(songs []library.Song) {
	m.songs = songs
	m.selected = max(0, min(m.selected, len(songs)-1))
}

func (m *Model) insertSong(s library.Song) {
	ctx, cancel := m.queryContext()
	defer cancel()

	id, err := m.store.Insert(ctx, s)
	if err != nil {
		m.reportErrorWith(errmsg.OpSongCreate, s.Title, err)
		return
	}
	m.log.WithField("id", id).Info("song created")
	m.reportInfo("Added " + s.Title)
}

func (m *Model) updateSong(id int64, s library.Song) {
	ctx, cancel := m.queryContext()
	defer cancel()

	if err := m.store.Update(ctx, id, s); err != nil {
		m.reportErrorWith(errmsg.OpSongUpdate, s.Title, err)
		return
	}
	m.log.WithField("id", id).Info("song updated")
	m.reportInfo("Updated " + s.Title)
}

func (m *Model) deleteSong(s library.Song) {
	ctx, cancel := m.queryContext()
	defer cancel()

	if err := m.store.Delete(ctx, s.ID); err != nil {
		m.reportErrorWith(errmsg.OpSongDelete, s.Title, err)
		return
	}
	m.log.WithField("id", s.ID).Info("song deleted")
	m.reportInfo("Deleted " + s.Title)
}

func (m *Model) reportError(op errmsg.Op, err error) {
	m.reportErrorWith(op, "", err)
}

// reportErrorWith logs a failure and shows it in the status line, naming
// the song it concerns when title is set.
func (m *Model) reportErrorWith(op errmsg.Op, title string, err error) {
	entry := m.log.WithField("op", string(op)).WithError(err)
	if title != "" {
		entry = entry.WithField("title", title)
	}
	entry.Error("operation failed")
	m.status = Status{Text: errmsg.FormatWith(op, title, err), IsErr: true}
}

func (m *Model) reportInfo(text string) {
	m.status = Status{Text: text}
}
