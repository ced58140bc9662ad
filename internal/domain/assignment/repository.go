package assignment

import "context"

type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)
	GetByID(ctx context.Context, id string) (Assignment, error)
	List(ctx context.Context, filter AssignmentFilter) ([]Assignment, int64, error)
	Update(ctx context.Context, req UpdateAssignmentRequest) error
	Delete(ctx context.Context, id string) error
}
