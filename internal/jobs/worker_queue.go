package jobs

import (
	"sync/atomic"

	"github.com/prepdeck/prepdeck/internal/services"
	"github.com/prepdeck/prepdeck/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	importPool    *worker.Pool
	importService services.ImportService
	nextID        atomic.Int64
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(importPool *worker.Pool, importService services.ImportService) *WorkerQueue {
	return &WorkerQueue{
		importPool:    importPool,
		importService: importService,
	}
}

func (q *WorkerQueue) EnqueueImport(filename string, data []byte) (int64, error) {
	id := q.nextID.Add(1)
	err := q.importPool.Submit(&worker.ImportWorkbookJob{
		ImportService: q.importService,
		Filename:      filename,
		Data:          data,
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
