package kpi

import "context"

type ScoreRepository interface {
	Create(ctx context.Context, s Score) (Score, error)
	GetByID(ctx context.Context, id string) (Score, error)
	List(ctx context.Context, filter ScoreFilter) ([]Score, int64, error)
	Update(ctx context.Context, req UpdateScoreRequest) error
	Delete(ctx context.Context, id string) error
}
