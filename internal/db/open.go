// Package db opens the SQLite database backing the song catalogue.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Options controls how the database is opened.
type Options struct {
	Path string

	// StartCommand is run through the shell once when the first connection
	// attempt fails. Empty disables the retry.
	StartCommand string

	// CaseSensitiveLike turns on PRAGMA case_sensitive_like for every connection.
	CaseSensitiveLike bool
}

// Starter runs the backing-service start command.
type Starter func(ctx context.Context, command string) error

// ErrStartFailed wraps a failure of the start command.
var ErrStartFailed = errors.New("start command failed")

// Open connects to the database, starting the backing service and retrying
// once if the first attempt fails and a start command is configured.
func Open(ctx context.Context, opts Options) (*sql.DB, error) {
	return OpenWith(ctx, opts, ShellStarter)
}

// OpenWith is Open with an explicit starter.
func OpenWith(ctx context.Context, opts Options, start Starter) (*sql.DB, error) {
	conn, err := connect(ctx, opts)
	if err == nil {
		return conn, nil
	}
	if opts.StartCommand == "" {
		return nil, err
	}

	if startErr := start(ctx, opts.StartCommand); startErr != nil {
		return nil, fmt.Errorf("%w: %w (after: %w)", ErrStartFailed, startErr, err)
	}

	return connect(ctx, opts)
}

// ShellStarter runs command with sh -c and waits for it to exit.
func ShellStarter(ctx context.Context, command string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	if out, err := cmd.CombinedOutput(); err != nil {
		if len(out) > 0 {
			return fmt.Errorf("%w: %s", err, out)
		}
		return err
	}
	return nil
}

func connect(ctx context.Context, opts Options) (*sql.DB, error) {
	if opts.Path == "" {
		return nil, errors.New("database path is empty")
	}

	if opts.Path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite", dsn(opts))
	if err != nil {
		return nil, err
	}

	// In-memory databases and pragmas are per connection.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

func dsn(opts Options) string {
	if !opts.CaseSensitiveLike {
		return opts.Path
	}
	return "file:" + opts.Path + "?_pragma=case_sensitive_like(1)"
}
