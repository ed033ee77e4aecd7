package library

import (
	"context"
	"database/sql"
)

func initSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS songs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			artist TEXT NOT NULL,
			album TEXT NOT NULL,
			release_year INTEGER NOT NULL,
			media_type TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_songs_artist ON songs(artist);
	`)
	return err
}
