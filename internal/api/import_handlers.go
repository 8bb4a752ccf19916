package api

import (
	"errors"
	"io"
	"net/http"

	apperrors "github.com/prepdeck/prepdeck/internal/errors"
	"github.com/prepdeck/prepdeck/internal/logger"
	"github.com/prepdeck/prepdeck/internal/worker"
)

// Workbooks larger than this are rejected before reading the body into memory.
const maxImportSize = 10 << 20

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		handleError(w, r, apperrors.NewBadRequestError("invalid multipart form: "+err.Error()))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(w, r, apperrors.NewBadRequestError("missing file field"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImportSize+1))
	if err != nil {
		handleError(w, r, apperrors.NewInternalError(err))
		return
	}
	if len(data) > maxImportSize {
		handleError(w, r, apperrors.NewBadRequestError("file too large"))
		return
	}

	jobID, err := s.JobQueue.EnqueueImport(header.Filename, data)
	if err != nil {
		if errors.Is(err, worker.ErrQueueFull) {
			handleError(w, r, apperrors.NewUnavailableError("import queue", err))
			return
		}
		handleError(w, r, apperrors.NewInternalError(err))
		return
	}

	log.Info("import queued: job_id=%d, filename=%s, size=%d", jobID, header.Filename, len(data))
	writeJSON(w, r, http.StatusAccepted, map[string]any{
		"job_id":   jobID,
		"filename": header.Filename,
		"status":   "queued",
	})
}
