package appraisal

import "context"

type AppraisalRepository interface {
	Create(ctx context.Context, a Appraisal) (Appraisal, error)
	GetByID(ctx context.Context, id string) (Appraisal, error)
	List(ctx context.Context, filter AppraisalFilter) ([]Appraisal, int64, error)
	Update(ctx context.Context, req UpdateAppraisalRequest) error
	Delete(ctx context.Context, id string) error
}
