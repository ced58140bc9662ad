package faculty

import "context"

type FacultyRepository interface {
	Create(ctx context.Context, f Faculty) (Faculty, error)
	GetByID(ctx context.Context, id string) (Faculty, error)
	List(ctx context.Context, filter FacultyFilter) ([]Faculty, int64, error)
	Update(ctx context.Context, req UpdateFacultyRequest) error
	Delete(ctx context.Context, id string) error
}
