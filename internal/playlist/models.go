package playlist

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// Playlist is a single document in the playlists collection. Videos keeps
// its order end to end: the order URLs are entered is the order they are
// stored and displayed.
type Playlist struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Videos      []string `json:"videos"`
}

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000
)

// newID returns a 24-character hex token, the same shape as a document
// database object id.
func newID() string {
	var b [12]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}

// splitVideos expands the newline-joined textarea value back into an
// ordered list of URLs. Blank lines are dropped, order is preserved.
func splitVideos(s string) []string {
	var videos []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		videos = append(videos, line)
	}
	return videos
}

// joinVideos is the inverse of splitVideos for transport through a form
// field. joinVideos then splitVideos reproduces the original sequence.
func joinVideos(videos []string) string {
	return strings.Join(videos, "\n")
}
