package university

import "context"

type UniversityRepository interface {
	Create(ctx context.Context, u University) (University, error)
	GetByID(ctx context.Context, id string) (University, error)
	List(ctx context.Context, filter UniversityFilter) ([]University, int64, error)
	Update(ctx context.Context, req UpdateUniversityRequest) error
	Delete(ctx context.Context, id string) error
}
