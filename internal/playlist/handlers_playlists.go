package playlist

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

var (
	errInvalidTitle       = errors.New("title must be between 1 and 200 characters")
	errDescriptionTooLong = errors.New("description is too long")
)

// playlistFromForm rebuilds a playlist from the submitted form fields. The
// videos field arrives newline-joined and is expanded back into an ordered
// list.
func playlistFromForm(r *http.Request) (Playlist, error) {
	if err := r.ParseForm(); err != nil {
		return Playlist{}, err
	}

	pl := Playlist{
		Title:       strings.TrimSpace(r.PostFormValue("title")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Videos:      splitVideos(r.PostFormValue("videos")),
	}

	if pl.Title == "" || len(pl.Title) > maxTitleLen {
		return Playlist{}, errInvalidTitle
	}
	if len(pl.Description) > maxDescriptionLen {
		return Playlist{}, errDescriptionTooLong
	}

	return pl, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	playlists, err := s.store.FindAll(ctx)
	if err != nil {
		log.Printf("playlister: list playlists: %v", err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}

	render(w, "index.html", map[string]any{
		"Playlists": playlists,
	})
}

func (s *Server) handleNewPlaylist(w http.ResponseWriter, r *http.Request) {
	render(w, "new.html", nil)
}

func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pl, err := playlistFromForm(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.InsertOne(ctx, pl); err != nil {
		log.Printf("playlister: create playlist: %v", err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}

	s.publishEvent(ctx, map[string]any{
		"type":    "playlist.created",
		"payload": map[string]any{"playlist": pl},
	})

	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleShowPlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	pl, err := s.store.FindOne(ctx, id)
	if errors.Is(err, ErrNotFound) {
		writeError(w, http.StatusNotFound, "playlist not found")
		return
	}
	if err != nil {
		log.Printf("playlister: show playlist %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}

	render(w, "show.html", map[string]any{
		"Playlist": pl,
	})
}

func (s *Server) handleEditPlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	pl, err := s.store.FindOne(ctx, id)
	if errors.Is(err, ErrNotFound) {
		writeError(w, http.StatusNotFound, "playlist not found")
		return
	}
	if err != nil {
		log.Printf("playlister: edit playlist %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}

	render(w, "edit.html", map[string]any{
		"Playlist":   pl,
		"VideosText": joinVideos(pl.Videos),
	})
}

// handleUpdatePlaylist replaces the whole document: title, description and
// videos together, never a partial merge.
func (s *Server) handleUpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	pl, err := playlistFromForm(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.ReplaceOne(ctx, id, pl); err != nil {
		log.Printf("playlister: update playlist %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}

	s.publishEvent(ctx, map[string]any{
		"type":    "playlist.updated",
		"payload": map[string]any{"playlistId": id, "playlist": pl},
	})

	http.Redirect(w, r, "/playlists/"+id, http.StatusFound)
}

func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")

	// The delete form tunnels DELETE through POST with a _method field.
	// Anything else posting here is a mistargeted form.
	if method := strings.ToUpper(r.PostFormValue("_method")); method != http.MethodDelete {
		writeError(w, http.StatusBadRequest, "expected _method=DELETE")
		return
	}

	if err := s.store.DeleteOne(ctx, id); err != nil {
		log.Printf("playlister: delete playlist %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "storage error")
		return
	}

	s.publishEvent(ctx, map[string]any{
		"type":    "playlist.deleted",
		"payload": map[string]any{"playlistId": id},
	})

	http.Redirect(w, r, "/", http.StatusFound)
}
