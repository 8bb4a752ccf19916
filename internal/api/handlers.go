package api

import (
	"github.com/prepdeck/prepdeck/internal/db"
	"github.com/prepdeck/prepdeck/internal/jobs"
	"github.com/prepdeck/prepdeck/internal/markdown"
	"github.com/prepdeck/prepdeck/internal/services"
)

type Server struct {
	DB               *db.DB
	QuestionService  services.QuestionService
	StudyService     services.StudyService
	StatsService     services.StatsService
	InterviewService services.InterviewService
	ImportService    services.ImportService
	Renderer         *markdown.Renderer
	JobQueue         jobs.JobQueue
}
