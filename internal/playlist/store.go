package playlist

import (
	"context"
	"errors"
)

// ErrNotFound is returned by FindOne when no document matches the id.
var ErrNotFound = errors.New("playlist not found")

// Store is the document collection the route layer runs against. The server
// receives it at construction time, so tests can substitute a stub without
// touching real storage.
//
// ReplaceOne swaps the whole document (no partial update) and, like
// DeleteOne, is a no-op when the id does not exist.
type Store interface {
	FindAll(ctx context.Context) ([]Playlist, error)
	FindOne(ctx context.Context, id string) (Playlist, error)
	InsertOne(ctx context.Context, pl Playlist) error
	ReplaceOne(ctx context.Context, id string, pl Playlist) error
	DeleteOne(ctx context.Context, id string) error
}
