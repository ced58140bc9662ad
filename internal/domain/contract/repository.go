package contract

import (
	"context"
	"time"
)

type ContractRepository interface {
	Create(ctx context.Context, c Contract) (Contract, error)
	GetByID(ctx context.Context, id string) (Contract, error)
	List(ctx context.Context, filter ContractFilter) ([]Contract, int64, error)
	Update(ctx context.Context, req UpdateContractRequest) error
	Delete(ctx context.Context, id string) error
	// ExpireEnded marks active contracts whose end_date is before asOf as expired
	// and returns the affected ids.
	ExpireEnded(ctx context.Context, asOf time.Time) ([]string, error)
}
