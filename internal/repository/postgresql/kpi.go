package postgresql

import (
	"context"
	"fmt"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/kpi"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/database"
)

type scoreRepositoryImpl struct {
	db *database.DB
}

func NewScoreRepository(db *database.DB) kpi.ScoreRepository {
	return &scoreRepositoryImpl{db: db}
}

const scoreSelect = `
	SELECT k.id, k.employee_id, k.cycle_id, k.kpi_name, k.target, k.achieved, k.weight, k.created_at, k.updated_at,
		   NULLIF(TRIM(CONCAT(e.first_name, ' ', e.last_name)), '') AS employee_name,
		   c.name AS cycle_name
	FROM kpi_scores k
	LEFT JOIN employees e ON k.employee_id = e.id
	LEFT JOIN performance_cycles c ON k.cycle_id = c.id
`

func scanScore(row scanner) (kpi.Score, error) {
	var s kpi.Score
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.CycleID, &s.KPIName, &s.Target, &s.Achieved, &s.Weight, &s.CreatedAt, &s.UpdatedAt,
		&s.EmployeeName, &s.CycleName,
	)
	return s, err
}

// Create implements kpi.ScoreRepository.
func (r *scoreRepositoryImpl) Create(ctx context.Context, s kpi.Score) (kpi.Score, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return kpi.Score{}, err
	}

	query := `
		INSERT INTO kpi_scores (id, employee_id, cycle_id, kpi_name, target, achieved, weight, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err = q.Exec(ctx, query, id, s.EmployeeID, s.CycleID, s.KPIName, s.Target, s.Achieved, s.Weight)
	if err != nil {
		return kpi.Score{}, fmt.Errorf("failed to create kpi score: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements kpi.ScoreRepository.
func (r *scoreRepositoryImpl) GetByID(ctx context.Context, id string) (kpi.Score, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanScore(q.QueryRow(ctx, scoreSelect+` WHERE k.id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return kpi.Score{}, kpi.ErrScoreNotFound
		}
		return kpi.Score{}, fmt.Errorf("failed to get kpi score: %w", err)
	}
	return found, nil
}

// List implements kpi.ScoreRepository.
func (r *scoreRepositoryImpl) List(ctx context.Context, filter kpi.ScoreFilter) ([]kpi.Score, int64, error) {
	q := GetQuerier(ctx, r.db)

	var where whereBuilder
	where.search(filter.Search, "k.kpi_name", "e.first_name", "e.last_name")
	where.eq("k.employee_id", filter.EmployeeID)
	where.eq("k.cycle_id", filter.CycleID)

	var total int64
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM kpi_scores k
		LEFT JOIN employees e ON k.employee_id = e.id
		%s
	`, where.clause())
	if err := q.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count kpi scores: %w", err)
	}

	limit, args := where.page(filter.ListParams)
	query := fmt.Sprintf(`%s %s ORDER BY k.created_at DESC, k.id ASC %s`, scoreSelect, where.clause(), limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list kpi scores: %w", err)
	}
	defer rows.Close()

	scores := make([]kpi.Score, 0)
	for rows.Next() {
		s, err := scanScore(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan kpi score: %w", err)
		}
		scores = append(scores, s)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return scores, total, nil
}

// Update implements kpi.ScoreRepository.
func (r *scoreRepositoryImpl) Update(ctx context.Context, req kpi.UpdateScoreRequest) error {
	q := GetQuerier(ctx, r.db)

	var set setBuilder
	set.setString("employee_id", req.EmployeeID)
	set.setString("cycle_id", req.CycleID)
	set.setString("kpi_name", req.KPIName)
	if req.Target != nil {
		set.set("target", *req.Target)
	}
	if req.Achieved != nil {
		set.set("achieved", *req.Achieved)
	}
	if req.Weight != nil {
		set.set("weight", *req.Weight)
	}

	found, err := set.exec(ctx, q, "kpi_scores", req.ID)
	if err != nil {
		return fmt.Errorf("failed to update kpi score: %w", err)
	}
	if !found {
		return kpi.ErrScoreNotFound
	}
	return nil
}

// Delete implements kpi.ScoreRepository.
func (r *scoreRepositoryImpl) Delete(ctx context.Context, id string) error {
	found, err := deleteByID(ctx, GetQuerier(ctx, r.db), "kpi_scores", id)
	if err != nil {
		return fmt.Errorf("failed to delete kpi score: %w", err)
	}
	if !found {
		return kpi.ErrScoreNotFound
	}
	return nil
}
