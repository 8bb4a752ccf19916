package worker

import (
	"context"

	"github.com/prepdeck/prepdeck/internal/logger"
	"github.com/prepdeck/prepdeck/internal/services"
)

// ImportWorkbookJob parses an uploaded workbook and inserts its questions.
// The upload bytes are captured at enqueue time so the HTTP request can
// return before parsing starts.
type ImportWorkbookJob struct {
	ImportService services.ImportService
	Filename      string
	Data          []byte
}

func (j *ImportWorkbookJob) Name() string { return "import_workbook" }

func (j *ImportWorkbookJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("filename", j.Filename)

	result, err := j.ImportService.ImportWorkbook(logger.NewContext(ctx, log), j.Data)
	if err != nil {
		log.Error("workbook import failed: %v", err)
		return err
	}

	log.Info("workbook import done: %d parsed, %d skipped of %d rows",
		result.Parsed, result.Skipped, result.TotalRows)
	return nil
}
