package postgresql

import (
	"context"
	"fmt"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/job"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type jobRepositoryImpl struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) job.JobRepository {
	return &jobRepositoryImpl{db: db}
}

const jobColumns = `id, title, description, level, min_salary, max_salary, status, category, created_at, updated_at`

func scanJob(row scanner) (job.Job, error) {
	var (
		j                    job.Job
		minSalary, maxSalary decimal.NullDecimal
	)
	err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Level, &minSalary, &maxSalary, &j.Status, &j.Category, &j.CreatedAt, &j.UpdatedAt)
	j.MinSalary = decimalPtr(minSalary)
	j.MaxSalary = decimalPtr(maxSalary)
	return j, err
}

// Create implements job.JobRepository.
func (r *jobRepositoryImpl) Create(ctx context.Context, j job.Job) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return job.Job{}, err
	}

	query := `
		INSERT INTO jobs (id, title, description, level, min_salary, max_salary, status, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + jobColumns

	created, err := scanJob(q.QueryRow(ctx, query,
		id, j.Title, j.Description, j.Level, j.MinSalary, j.MaxSalary, j.Status, j.Category,
	))
	if err != nil {
		return job.Job{}, fmt.Errorf("failed to create job: %w", err)
	}
	return created, nil
}

// GetByID implements job.JobRepository.
func (r *jobRepositoryImpl) GetByID(ctx context.Context, id string) (job.Job, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanJob(q.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return job.Job{}, job.ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("failed to get job: %w", err)
	}
	return found, nil
}

// List implements job.JobRepository.
func (r *jobRepositoryImpl) List(ctx context.Context, filter job.JobFilter) ([]job.Job, int64, error) {
	q := GetQuerier(ctx, r.db)

	var where whereBuilder
	where.search(filter.Search, "title", "category", "description")
	where.eq("level", filter.Level)
	where.eq("status", filter.Status)

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM jobs %s", where.clause())
	if err := q.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	limit, args := where.page(filter.ListParams)
	query := fmt.Sprintf(`SELECT %s FROM jobs %s ORDER BY title ASC, id ASC %s`, jobColumns, where.clause(), limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return jobs, total, nil
}

// Update implements job.JobRepository.
func (r *jobRepositoryImpl) Update(ctx context.Context, req job.UpdateJobRequest) error {
	q := GetQuerier(ctx, r.db)

	var set setBuilder
	set.setString("title", req.Title)
	set.setOptional("description", req.Description)
	set.setString("level", req.Level)
	if req.MinSalary != nil {
		set.set("min_salary", *req.MinSalary)
	}
	if req.MaxSalary != nil {
		set.set("max_salary", *req.MaxSalary)
	}
	set.setString("status", req.Status)
	set.setOptional("category", req.Category)

	found, err := set.exec(ctx, q, "jobs", req.ID)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if !found {
		return job.ErrJobNotFound
	}
	return nil
}

// Delete implements job.JobRepository.
func (r *jobRepositoryImpl) Delete(ctx context.Context, id string) error {
	found, err := deleteByID(ctx, GetQuerier(ctx, r.db), "jobs", id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if !found {
		return job.ErrJobNotFound
	}
	return nil
}
