package jobs

// JobQueue provides an abstraction for enqueueing background jobs
type JobQueue interface {
	// EnqueueImport schedules a workbook import and returns a job id the
	// caller can log or surface to the user.
	EnqueueImport(filename string, data []byte) (int64, error)
}
