package services

import (
	"bytes"
	"context"

	"github.com/prepdeck/prepdeck/internal/errors"
	"github.com/prepdeck/prepdeck/internal/importer"
	"github.com/prepdeck/prepdeck/internal/logger"
	"github.com/prepdeck/prepdeck/internal/repository"
)

// ImportService handles bulk question imports
type ImportService interface {
	ImportWorkbook(ctx context.Context, data []byte) (*importer.Result, error)
}

type importService struct {
	questionRepo repository.QuestionRepository
}

// NewImportService creates a new ImportService
func NewImportService(questionRepo repository.QuestionRepository) ImportService {
	return &importService{questionRepo: questionRepo}
}

func (s *importService) ImportWorkbook(ctx context.Context, data []byte) (*importer.Result, error) {
	log := logger.FromContext(ctx)
	log.Info("importing workbook: %d bytes", len(data))

	questions, result, err := importer.ParseWorkbook(bytes.NewReader(data))
	if err != nil {
		log.Warn("failed to parse workbook: %v", err)
		return nil, errors.NewBadRequestError("could not parse workbook: " + err.Error())
	}

	if len(questions) > 0 {
		if _, err := s.questionRepo.InsertBatch(ctx, questions); err != nil {
			log.Error("failed to insert imported questions: %v", err)
			return nil, errors.NewInternalError(err)
		}
	}

	log.Info("import finished: %d parsed, %d skipped", result.Parsed, result.Skipped)
	return result, nil
}
