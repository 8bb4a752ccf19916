package api

import (
	"net/http"
	"strings"

	"github.com/prepdeck/prepdeck/internal/logger"
	"github.com/prepdeck/prepdeck/internal/models"
)

// questionResponse is a question plus its markdown rendered to HTML, so
// clients don't need their own renderer.
type questionResponse struct {
	models.Question
	BodyHTML   string `json:"body_html,omitempty"`
	AnswerHTML string `json:"answer_html,omitempty"`
}

func (s *Server) toQuestionResponse(r *http.Request, q models.Question) questionResponse {
	resp := questionResponse{Question: q}
	log := logger.FromContext(r.Context())

	if q.Body != "" {
		html, err := s.Renderer.Render(q.Body)
		if err != nil {
			log.Warn("failed to render question body: %v", err)
		} else {
			resp.BodyHTML = html
		}
	}
	if q.Answer != "" {
		html, err := s.Renderer.Render(q.Answer)
		if err != nil {
			log.Warn("failed to render question answer: %v", err)
		} else {
			resp.AnswerHTML = html
		}
	}
	return resp
}

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	perPage := queryInt(r, "per_page", 25)
	if perPage < 1 || perPage > 100 {
		perPage = 25
	}
	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}

	orderDir := strings.ToUpper(query.Get("order_dir"))
	if orderDir != "ASC" && orderDir != "DESC" {
		orderDir = "ASC"
	}

	filter := models.QuestionFilter{
		Category:   query.Get("category"),
		Difficulty: query.Get("difficulty"),
		Search:     query.Get("search"),
		Limit:      perPage,
		Offset:     (page - 1) * perPage,
		OrderBy:    query.Get("order_by"),
		OrderDir:   orderDir,
	}

	questions, total, err := s.QuestionService.ListQuestions(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"questions": questions,
		"total":     total,
		"page":      page,
		"per_page":  perPage,
	})
}

func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	q, err := s.QuestionService.GetQuestion(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, s.toQuestionResponse(r, *q))
}

func (s *Server) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var q models.Question
	if err := decodeJSON(r, &q); err != nil {
		handleError(w, r, err)
		return
	}
	q.ID = 0

	created, err := s.QuestionService.CreateQuestion(r.Context(), q)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, s.toQuestionResponse(r, *created))
}

func (s *Server) handleUpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var q models.Question
	if err := decodeJSON(r, &q); err != nil {
		handleError(w, r, err)
		return
	}
	q.ID = id

	if err := s.QuestionService.UpdateQuestion(r.Context(), q); err != nil {
		handleError(w, r, err)
		return
	}

	updated, err := s.QuestionService.GetQuestion(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, s.toQuestionResponse(r, *updated))
}

func (s *Server) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.QuestionService.DeleteQuestion(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
