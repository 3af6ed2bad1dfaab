package playlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	store Store
	rdb   *redis.Client
}

func NewServer(store Store, rdb *redis.Client) *Server {
	return &Server{
		store: store,
		rdb:   rdb,
	}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)

	// Resourceful playlist routes. Browsers only speak GET and POST from
	// plain HTML forms, so update posts to the show path and delete posts
	// to a /delete path carrying a _method override field.
	r.Get("/", s.handleIndex)
	r.Get("/playlists/new", s.handleNewPlaylist)
	r.Post("/playlists", s.handleCreatePlaylist)
	r.Get("/playlists/{id}", s.handleShowPlaylist)
	r.Get("/playlists/{id}/edit", s.handleEditPlaylist)
	r.Post("/playlists/{id}", s.handleUpdatePlaylist)
	r.Post("/playlists/{id}/delete", s.handleDeletePlaylist)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "playlister",
	})
}
