package job

import "context"

type JobRepository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id string) (Job, error)
	List(ctx context.Context, filter JobFilter) ([]Job, int64, error)
	Update(ctx context.Context, req UpdateJobRequest) error
	Delete(ctx context.Context, id string) error
}
