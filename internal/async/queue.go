package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one extraction request against an ingested file.
type Job struct {
	FileID      uuid.UUID
	Force       bool // enqueue even if deduplicated
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
