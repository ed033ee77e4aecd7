package library

import (
	"context"
	"database/sql"
	"strings"

	"github.com/llehouerou/songbook/internal/db"
)

// Library is the SQLite-backed Store.
type Library struct {
	db *sql.DB
}

// New wraps an open database and makes sure the songs table exists.
func New(ctx context.Context, conn *sql.DB) (*Library, error) {
	if err := initSchema(ctx, conn); err != nil {
		return nil, err
	}
	return &Library{db: conn}, nil
}

// Close closes the underlying database.
func (l *Library) Close() error {
	return l.db.Close()
}

const selectSongs = `
	SELECT id, title, artist, album, release_year, media_type
	FROM songs
`

// All returns every song ordered by id.
func (l *Library) All(ctx context.Context) ([]Song, error) {
	rows, err := l.db.QueryContext(ctx, selectSongs+` ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return scanSongs(rows)
}

// Matching returns songs whose text fields or year contain keyword.
func (l *Library) Matching(ctx context.Context, keyword string) ([]Song, error) {
	pattern := "%" + escapeLike(keyword) + "%"
	rows, err := l.db.QueryContext(ctx, selectSongs+`
		WHERE title LIKE ?1 ESCAPE '\'
			OR artist LIKE ?1 ESCAPE '\'
			OR album LIKE ?1 ESCAPE '\'
			OR CAST(release_year AS TEXT) LIKE ?1 ESCAPE '\'
			OR media_type LIKE ?1 ESCAPE '\'
		ORDER BY id
	`, pattern)
	if err != nil {
		return nil, err
	}
	return scanSongs(rows)
}

// Insert stores a new song and returns its id. s.ID is ignored.
func (l *Library) Insert(ctx context.Context, s Song) (int64, error) {
	res, err := l.db.ExecContext(ctx, `
		INSERT INTO songs (title, artist, album, release_year, media_type)
		VALUES (?, ?, ?, ?, ?)
	`, s.Title, s.Artist, s.Album, s.ReleaseYear, s.MediaType)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update replaces every field of song id except the id itself.
func (l *Library) Update(ctx context.Context, id int64, s Song) error {
	return db.WithTx(ctx, l.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE songs
			SET title = ?, artist = ?, album = ?, release_year = ?, media_type = ?
			WHERE id = ?
		`, s.Title, s.Artist, s.Album, s.ReleaseYear, s.MediaType, id)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
}

// Delete removes song id.
func (l *Library) Delete(ctx context.Context, id int64) error {
	return db.WithTx(ctx, l.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM songs WHERE id = ?`, id)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSongs(rows *sql.Rows) ([]Song, error) {
	defer rows.Close()

	var songs []Song
	for rows.Next() {
		var s Song
		if err := rows.Scan(&s.ID, &s.Title, &s.Artist, &s.Album, &s.ReleaseYear, &s.MediaType); err != nil {
			return nil, err
		}
		songs = append(songs, s)
	}
	return songs, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
