package repository

import (
	"context"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// JobRepository defines the interface for job storage operations
type JobRepository interface {
	ReplaceJobs(ctx context.Context, jobs []domain.Job) error
	FetchJobs(ctx context.Context) ([]domain.Job, error)
}
