package playlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// PGStore keeps each playlist as a JSONB document in a single table, with
// the identifier in its own column.
type PGStore struct {
	db DB
}

func NewPGStore(db DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) FindAll(ctx context.Context) ([]Playlist, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, doc
		FROM playlists
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("find all: %w", err)
	}
	defer rows.Close()

	playlists := []Playlist{}
	for rows.Next() {
		var (
			id  string
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("find all scan: %w", err)
		}
		var pl Playlist
		if err := json.Unmarshal(doc, &pl); err != nil {
			return nil, fmt.Errorf("find all decode %s: %w", id, err)
		}
		pl.ID = id
		playlists = append(playlists, pl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find all rows: %w", err)
	}

	return playlists, nil
}

func (s *PGStore) FindOne(ctx context.Context, id string) (Playlist, error) {
	var doc []byte
	err := s.db.QueryRow(ctx, `
		SELECT doc
		FROM playlists
		WHERE id = $1
	`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return Playlist{}, ErrNotFound
	}
	if err != nil {
		return Playlist{}, fmt.Errorf("find one: %w", err)
	}

	var pl Playlist
	if err := json.Unmarshal(doc, &pl); err != nil {
		return Playlist{}, fmt.Errorf("find one decode: %w", err)
	}
	pl.ID = id
	return pl, nil
}

// InsertOne stores a new document. When the playlist carries no id, a fresh
// one is generated, matching how a document database assigns object ids.
func (s *PGStore) InsertOne(ctx context.Context, pl Playlist) error {
	id := pl.ID
	if id == "" {
		id = newID()
	}
	doc, err := marshalDoc(pl)
	if err != nil {
		return fmt.Errorf("insert one encode: %w", err)
	}
	if _, err := s.db.Exec(ctx, `
		INSERT INTO playlists (id, doc) VALUES ($1, $2)
	`, id, doc); err != nil {
		return fmt.Errorf("insert one: %w", err)
	}
	return nil
}

func (s *PGStore) ReplaceOne(ctx context.Context, id string, pl Playlist) error {
	doc, err := marshalDoc(pl)
	if err != nil {
		return fmt.Errorf("replace one encode: %w", err)
	}
	if _, err := s.db.Exec(ctx, `
		UPDATE playlists SET doc = $2 WHERE id = $1
	`, id, doc); err != nil {
		return fmt.Errorf("replace one: %w", err)
	}
	return nil
}

func (s *PGStore) DeleteOne(ctx context.Context, id string) error {
	if _, err := s.db.Exec(ctx, `
		DELETE FROM playlists WHERE id = $1
	`, id); err != nil {
		return fmt.Errorf("delete one: %w", err)
	}
	return nil
}

// marshalDoc strips the id before encoding; it lives in its own column.
func marshalDoc(pl Playlist) ([]byte, error) {
	pl.ID = ""
	return json.Marshal(pl)
}
