package library

import (
	"context"
	"slices"
	"strings"
)

// Call records one Store invocation on a Mock.
type Call struct {
	Op      string // "all", "matching", "insert", "update", "delete"
	Keyword string
	ID      int64
	Song    Song
}

// Mock is an in-memory Store for tests. It records every call in order.
type Mock struct {
	songs  []Song
	nextID int64
	calls  []Call
	errs   map[string]error
	closed bool
}

// NewMock creates a mock store seeded with songs.
func NewMock(songs ...Song) *Mock {
	m := &Mock{errs: make(map[string]error)}
	for _, s := range songs {
		m.songs = append(m.songs, s)
		m.nextID = max(m.nextID, s.ID)
	}
	return m
}

// FailOn makes every later call to op return err. A nil err clears it.
func (m *Mock) FailOn(op string, err error) {
	if err == nil {
		delete(m.errs, op)
		return
	}
	m.errs[op] = err
}

// Calls returns the recorded calls.
func (m *Mock) Calls() []Call {
	return slices.Clone(m.calls)
}

// CallsTo returns the recorded calls of a single operation.
func (m *Mock) CallsTo(op string) []Call {
	var out []Call
	for _, c := range m.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// ResetCalls forgets the recorded calls.
func (m *Mock) ResetCalls() {
	m.calls = nil
}

// Songs returns the current contents.
func (m *Mock) Songs() []Song {
	return slices.Clone(m.songs)
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	return m.closed
}

func (m *Mock) All(_ context.Context) ([]Song, error) {
	m.calls = append(m.calls, Call{Op: "all"})
	if err := m.errs["all"]; err != nil {
		return nil, err
	}
	return slices.Clone(m.songs), nil
}

func (m *Mock) Matching(_ context.Context, keyword string) ([]Song, error) {
	m.calls = append(m.calls, Call{Op: "matching", Keyword: keyword})
	if err := m.errs["matching"]; err != nil {
		return nil, err
	}
	var out []Song
	for _, s := range m.songs {
		if songContains(s, keyword) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *Mock) Insert(_ context.Context, s Song) (int64, error) {
	m.calls = append(m.calls, Call{Op: "insert", Song: s})
	if err := m.errs["insert"]; err != nil {
		return 0, err
	}
	m.nextID++
	s.ID = m.nextID
	m.songs = append(m.songs, s)
	return s.ID, nil
}

func (m *Mock) Update(_ context.Context, id int64, s Song) error {
	m.calls = append(m.calls, Call{Op: "update", ID: id, Song: s})
	if err := m.errs["update"]; err != nil {
		return err
	}
	for i := range m.songs {
		if m.songs[i].ID == id {
			s.ID = id
			m.songs[i] = s
			return nil
		}
	}
	return ErrNotFound
}

func (m *Mock) Delete(_ context.Context, id int64) error {
	m.calls = append(m.calls, Call{Op: "delete", ID: id})
	if err := m.errs["delete"]; err != nil {
		return err
	}
	for i := range m.songs {
		if m.songs[i].ID == id {
			m.songs = slices.Delete(m.songs, i, i+1)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

func songContains(s Song, keyword string) bool {
	kw := strings.ToLower(keyword)
	for _, field := range []string{s.Title, s.Artist, s.Album, s.YearString(), s.MediaType} {
		if strings.Contains(strings.ToLower(field), kw) {
			return true
		}
	}
	return false
}
