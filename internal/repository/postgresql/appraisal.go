package postgresql

import (
	"context"
	"fmt"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/appraisal"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/database"
)

type appraisalRepositoryImpl struct {
	db *database.DB
}

func NewAppraisalRepository(db *database.DB) appraisal.AppraisalRepository {
	return &appraisalRepositoryImpl{db: db}
}

const appraisalSelect = `
	SELECT a.id, a.employee_id, a.cycle_id, a.reviewer_id, a.score, a.comments, a.status, a.created_at, a.updated_at,
		   NULLIF(TRIM(CONCAT(e.first_name, ' ', e.last_name)), '') AS employee_name,
		   c.name AS cycle_name,
		   NULLIF(TRIM(CONCAT(rv.first_name, ' ', rv.last_name)), '') AS reviewer_name
	FROM appraisals a
	LEFT JOIN employees e ON a.employee_id = e.id
	LEFT JOIN performance_cycles c ON a.cycle_id = c.id
	LEFT JOIN employees rv ON a.reviewer_id = rv.id
`

func scanAppraisal(row scanner) (appraisal.Appraisal, error) {
	var a appraisal.Appraisal
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.CycleID, &a.ReviewerID, &a.Score, &a.Comments, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName, &a.CycleName, &a.ReviewerName,
	)
	return a, err
}

// Create implements appraisal.AppraisalRepository.
func (r *appraisalRepositoryImpl) Create(ctx context.Context, a appraisal.Appraisal) (appraisal.Appraisal, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return appraisal.Appraisal{}, err
	}

	query := `
		INSERT INTO appraisals (id, employee_id, cycle_id, reviewer_id, score, comments, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err = q.Exec(ctx, query, id, a.EmployeeID, a.CycleID, a.ReviewerID, a.Score, a.Comments, a.Status)
	if err != nil {
		return appraisal.Appraisal{}, fmt.Errorf("failed to create appraisal: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements appraisal.AppraisalRepository.
func (r *appraisalRepositoryImpl) GetByID(ctx context.Context, id string) (appraisal.Appraisal, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanAppraisal(q.QueryRow(ctx, appraisalSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return appraisal.Appraisal{}, appraisal.ErrAppraisalNotFound
		}
		return appraisal.Appraisal{}, fmt.Errorf("failed to get appraisal: %w", err)
	}
	return found, nil
}

// List implements appraisal.AppraisalRepository.
func (r *appraisalRepositoryImpl) List(ctx context.Context, filter appraisal.AppraisalFilter) ([]appraisal.Appraisal, int64, error) {
	q := GetQuerier(ctx, r.db)

	var where whereBuilder
	where.search(filter.Search, "e.first_name", "e.last_name", "c.name", "a.comments")
	where.eq("a.employee_id", filter.EmployeeID)
	where.eq("a.cycle_id", filter.CycleID)
	where.eq("a.status", filter.Status)

	var total int64
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM appraisals a
		LEFT JOIN employees e ON a.employee_id = e.id
		LEFT JOIN performance_cycles c ON a.cycle_id = c.id
		%s
	`, where.clause())
	if err := q.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count appraisals: %w", err)
	}

	limit, args := where.page(filter.ListParams)
	query := fmt.Sprintf(`%s %s ORDER BY a.created_at DESC, a.id ASC %s`, appraisalSelect, where.clause(), limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list appraisals: %w", err)
	}
	defer rows.Close()

	appraisals := make([]appraisal.Appraisal, 0)
	for rows.Next() {
		a, err := scanAppraisal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan appraisal: %w", err)
		}
		appraisals = append(appraisals, a)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return appraisals, total, nil
}

// Update implements appraisal.AppraisalRepository.
func (r *appraisalRepositoryImpl) Update(ctx context.Context, req appraisal.UpdateAppraisalRequest) error {
	q := GetQuerier(ctx, r.db)

	var set setBuilder
	set.setString("employee_id", req.EmployeeID)
	set.setString("cycle_id", req.CycleID)
	set.setOptional("reviewer_id", req.ReviewerID)
	if req.Score != nil {
		set.set("score", *req.Score)
	}
	set.setOptional("comments", req.Comments)
	set.setString("status", req.Status)

	found, err := set.exec(ctx, q, "appraisals", req.ID)
	if err != nil {
		return fmt.Errorf("failed to update appraisal: %w", err)
	}
	if !found {
		return appraisal.ErrAppraisalNotFound
	}
	return nil
}

// Delete implements appraisal.AppraisalRepository.
func (r *appraisalRepositoryImpl) Delete(ctx context.Context, id string) error {
	found, err := deleteByID(ctx, GetQuerier(ctx, r.db), "appraisals", id)
	if err != nil {
		return fmt.Errorf("failed to delete appraisal: %w", err)
	}
	if !found {
		return appraisal.ErrAppraisalNotFound
	}
	return nil
}
