package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Route("/questions", func(r chi.Router) {
			r.Get("/", s.handleListQuestions)
			r.Post("/", s.handleCreateQuestion)
			r.Get("/{id}", s.handleGetQuestion)
			r.Put("/{id}", s.handleUpdateQuestion)
			r.Delete("/{id}", s.handleDeleteQuestion)
		})

		r.Route("/study", func(r chi.Router) {
			r.Get("/next", s.handleNextQuestion)
			r.Post("/{id}/review", s.handleReviewQuestion)
			r.Get("/{id}/preview", s.handleIntervalPreview)
		})

		r.Get("/stats", s.handleStats)
		r.Get("/stats/daily", s.handleDailyStats)

		r.With(timeoutMiddleware(60 * time.Second)).Post("/interview", s.handleInterview)
		r.Post("/import", s.handleImport)
	})

	return r
}
