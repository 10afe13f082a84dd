package api

import (
	"net/http"
	"strings"
)

type toneRequest struct {
	Tone string `json:"tone"`
}

func (s *Server) handleSetTone(w http.ResponseWriter, r *http.Request) {
	var req toneRequest
	if err := decodeBody(w, r, &req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	tone := strings.TrimSpace(req.Tone)
	if tone == "" {
		jsonError(w, "tone is required", http.StatusBadRequest)
		return
	}

	s.log.Info("tone updated", "tone", tone)
	writeJSON(w, http.StatusOK, toneRequest{Tone: s.posts.SetTone(tone)})
}
