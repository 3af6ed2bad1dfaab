package playlist

import (
	"context"
	"fmt"
)

// StubStore implements Store for handler tests. Each operation records the
// arguments it was invoked with so assertions can check exactly what the
// route layer asked the collection to do. An operation invoked without a
// configured func is recorded in Unexpected and returns an error, so a
// mistargeted substitution fails loudly instead of pretending to be a real
// collection.
type StubStore struct {
	FindAllFunc    func(ctx context.Context) ([]Playlist, error)
	FindOneFunc    func(ctx context.Context, id string) (Playlist, error)
	InsertOneFunc  func(ctx context.Context, pl Playlist) error
	ReplaceOneFunc func(ctx context.Context, id string, pl Playlist) error
	DeleteOneFunc  func(ctx context.Context, id string) error

	FindAllCalls int
	FindOneCalls []string
	InsertCalls  []Playlist
	ReplaceCalls []ReplaceCall
	DeleteCalls  []string

	Unexpected []string
}

// ReplaceCall captures both halves of a ReplaceOne invocation: the id filter
// and the full replacement document.
type ReplaceCall struct {
	ID       string
	Playlist Playlist
}

func (s *StubStore) FindAll(ctx context.Context) ([]Playlist, error) {
	s.FindAllCalls++
	if s.FindAllFunc == nil {
		return nil, s.unexpected("FindAll")
	}
	return s.FindAllFunc(ctx)
}

func (s *StubStore) FindOne(ctx context.Context, id string) (Playlist, error) {
	s.FindOneCalls = append(s.FindOneCalls, id)
	if s.FindOneFunc == nil {
		return Playlist{}, s.unexpected("FindOne")
	}
	return s.FindOneFunc(ctx, id)
}

func (s *StubStore) InsertOne(ctx context.Context, pl Playlist) error {
	s.InsertCalls = append(s.InsertCalls, pl)
	if s.InsertOneFunc == nil {
		return s.unexpected("InsertOne")
	}
	return s.InsertOneFunc(ctx, pl)
}

func (s *StubStore) ReplaceOne(ctx context.Context, id string, pl Playlist) error {
	s.ReplaceCalls = append(s.ReplaceCalls, ReplaceCall{ID: id, Playlist: pl})
	if s.ReplaceOneFunc == nil {
		return s.unexpected("ReplaceOne")
	}
	return s.ReplaceOneFunc(ctx, id, pl)
}

func (s *StubStore) DeleteOne(ctx context.Context, id string) error {
	s.DeleteCalls = append(s.DeleteCalls, id)
	if s.DeleteOneFunc == nil {
		return s.unexpected("DeleteOne")
	}
	return s.DeleteOneFunc(ctx, id)
}

func (s *StubStore) unexpected(op string) error {
	s.Unexpected = append(s.Unexpected, op)
	return fmt.Errorf("unexpected store call: %s", op)
}
