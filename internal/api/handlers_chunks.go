package api

import (
	"net/http"

	"github.com/dgallion1/brandpost/internal/chunker"
	"github.com/go-chi/chi/v5"
)

type chunkSummary struct {
	Key      string              `json:"key"`
	Filename string              `json:"filename"`
	Type     chunker.ContentType `json:"type"`
	Bytes    int                 `json:"bytes"`
}

// handleListChunks lists the corpus without chunk text. ?type= filters by
// content type.
func (s *Server) handleListChunks(w http.ResponseWriter, r *http.Request) {
	filter := chunker.ContentType(r.URL.Query().Get("type"))
	if filter != "" && filter != chunker.TypeExample && filter != chunker.TypeDescription {
		jsonError(w, "type must be example or description", http.StatusBadRequest)
		return
	}

	out := make([]chunkSummary, 0, len(s.chunks))
	for _, key := range s.chunks.Keys() {
		c := s.chunks[key]
		if filter != "" && c.Type != filter {
			continue
		}
		out = append(out, chunkSummary{Key: key, Filename: c.Filename, Type: c.Type, Bytes: len(c.Text)})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"chunks": out,
		"count":  len(out),
	})
}

func (s *Server) handleGetChunk(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	c, ok := s.chunks[key]
	if !ok {
		jsonError(w, "chunk not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
