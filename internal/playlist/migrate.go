package playlist

import (
	"context"
	"log"
)

func AutoMigrate(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, `
      CREATE TABLE IF NOT EXISTS playlists (
          id         TEXT PRIMARY KEY,
          doc        JSONB NOT NULL,
          created_at TIMESTAMPTZ NOT NULL DEFAULT now()
      )
    `); err != nil {
		log.Printf("playlister: migrate playlists: %v", err)
		return err
	}
	return nil
}
