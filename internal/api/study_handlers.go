package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/prepdeck/prepdeck/internal/models"
)

type reviewRequest struct {
	Quality        int   `json:"quality"`
	ResponseTimeMs int64 `json:"response_time_ms"`
	WasRevealed    bool  `json:"was_revealed"`
}

func (s *Server) handleNextQuestion(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.ProgressFilter{
		Category:   query.Get("category"),
		Difficulty: query.Get("difficulty"),
		ExcludeIDs: parseIDList(query.Get("exclude_ids")),
	}

	next, err := s.StudyService.NextQuestion(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if next == nil {
		// Nothing to study is a valid answer, not a 404.
		writeJSON(w, r, http.StatusOK, map[string]any{"question": nil, "done": true})
		return
	}

	resp := s.toQuestionResponse(r, next.Question)
	writeJSON(w, r, http.StatusOK, map[string]any{
		"question": resp,
		"state":    next.State,
		"bucket":   next.Bucket,
		"version":  next.Version,
		"done":     false,
	})
}

func (s *Server) handleReviewQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	feedback, err := s.StudyService.RecordReview(r.Context(), id, req.Quality, req.ResponseTimeMs, req.WasRevealed)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, feedback)
}

func (s *Server) handleIntervalPreview(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	preview, err := s.StudyService.IntervalPreview(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{"intervals": preview})
}

// parseIDList parses a comma-separated id list, dropping anything malformed.
func parseIDList(s string) []int64 {
	if s == "" {
		return nil
	}
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		if id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64); err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
