package training

import (
	"context"
	"time"
)

type ProgramRepository interface {
	Create(ctx context.Context, p Program) (Program, error)
	GetByID(ctx context.Context, id string) (Program, error)
	List(ctx context.Context, filter ProgramFilter) ([]Program, int64, error)
	Update(ctx context.Context, req UpdateProgramRequest) error
	Delete(ctx context.Context, id string) error
	// SyncStatuses moves programs to the status their dates imply on day
	// and returns the ids that changed.
	SyncStatuses(ctx context.Context, day time.Time) ([]string, error)
}
