package cycle

import "context"

type CycleRepository interface {
	Create(ctx context.Context, c Cycle) (Cycle, error)
	GetByID(ctx context.Context, id string) (Cycle, error)
	List(ctx context.Context, filter CycleFilter) ([]Cycle, int64, error)
	Update(ctx context.Context, req UpdateCycleRequest) error
	Delete(ctx context.Context, id string) error
}
