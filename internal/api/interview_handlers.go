package api

import (
	"net/http"

	"github.com/prepdeck/prepdeck/internal/models"
)

func (s *Server) handleInterview(w http.ResponseWriter, r *http.Request) {
	var req models.InterviewRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	reply, err := s.InterviewService.Chat(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, reply)
}
