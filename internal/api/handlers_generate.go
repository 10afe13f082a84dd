package api

import (
	"net/http"
	"strings"
)

type generateRequest struct {
	Purpose  string `json:"purpose"`
	Language string `json:"language,omitempty"`
}

type generateResponse struct {
	Markdown string `json:"markdown"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeBody(w, r, &req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Purpose) == "" {
		jsonError(w, "purpose is required", http.StatusBadRequest)
		return
	}

	md, err := s.posts.Generate(r.Context(), req.Purpose, req.Language)
	if err != nil {
		s.log.Error("generate failed", "purpose", req.Purpose, "language", req.Language, "error", err)
		jsonError(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{Markdown: md})
}
