package library

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Update and Delete when no song has the id.
var ErrNotFound = errors.New("song not found")

// Store is the persistence contract used by the UI.
type Store interface {
	All(ctx context.Context) ([]Song, error)
	Matching(ctx context.Context, keyword string) ([]Song, error)
	Insert(ctx context.Context, s Song) (int64, error)
	Update(ctx context.Context, id int64, s Song) error
	Delete(ctx context.Context, id int64) error
	Close() error
}

// Compile-time checks.
var (
	_ Store = (*Library)(nil)
	_ Store = (*Mock)(nil)
)
