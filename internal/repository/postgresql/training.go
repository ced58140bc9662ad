package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/training"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/database"
)

type programRepositoryImpl struct {
	db *database.DB
}

func NewProgramRepository(db *database.DB) training.ProgramRepository {
	return &programRepositoryImpl{db: db}
}

const programColumns = `id, name, description, start_date, end_date, status, capacity, enrolled, created_at, updated_at`

func scanProgram(row scanner) (training.Program, error) {
	var p training.Program
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.StartDate, &p.EndDate, &p.Status, &p.Capacity, &p.Enrolled,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements training.ProgramRepository.
func (r *programRepositoryImpl) Create(ctx context.Context, p training.Program) (training.Program, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return training.Program{}, err
	}

	query := `
		INSERT INTO training_programs (
			id, name, description, start_date, end_date, status, capacity, enrolled, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + programColumns

	created, err := scanProgram(q.QueryRow(ctx, query,
		id, p.Name, p.Description, p.StartDate, p.EndDate, p.Status, p.Capacity, p.Enrolled,
	))
	if err != nil {
		return training.Program{}, fmt.Errorf("failed to create training program: %w", err)
	}
	return created, nil
}

// GetByID implements training.ProgramRepository.
func (r *programRepositoryImpl) GetByID(ctx context.Context, id string) (training.Program, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanProgram(q.QueryRow(ctx, `SELECT `+programColumns+` FROM training_programs WHERE id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return training.Program{}, training.ErrProgramNotFound
		}
		return training.Program{}, fmt.Errorf("failed to get training program: %w", err)
	}
	return found, nil
}

// List implements training.ProgramRepository.
func (r *programRepositoryImpl) List(ctx context.Context, filter training.ProgramFilter) ([]training.Program, int64, error) {
	q := GetQuerier(ctx, r.db)

	var where whereBuilder
	where.search(filter.Search, "name", "description")
	where.eq("status", filter.Status)

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM training_programs %s", where.clause())
	if err := q.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count training programs: %w", err)
	}

	limit, args := where.page(filter.ListParams)
	query := fmt.Sprintf(`SELECT %s FROM training_programs %s ORDER BY start_date DESC, id ASC %s`,
		programColumns, where.clause(), limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list training programs: %w", err)
	}
	defer rows.Close()

	programs := make([]training.Program, 0)
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan training program: %w", err)
		}
		programs = append(programs, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return programs, total, nil
}

// Update implements training.ProgramRepository.
func (r *programRepositoryImpl) Update(ctx context.Context, req training.UpdateProgramRequest) error {
	q := GetQuerier(ctx, r.db)

	var set setBuilder
	set.setString("name", req.Name)
	set.setOptional("description", req.Description)
	set.setString("start_date", req.StartDate)
	set.setString("end_date", req.EndDate)
	set.setString("status", req.Status)
	if req.Capacity != nil {
		set.set("capacity", *req.Capacity)
	}
	if req.Enrolled != nil {
		set.set("enrolled", *req.Enrolled)
	}

	found, err := set.exec(ctx, q, "training_programs", req.ID)
	if err != nil {
		return fmt.Errorf("failed to update training program: %w", err)
	}
	if !found {
		return training.ErrProgramNotFound
	}
	return nil
}

// Delete implements training.ProgramRepository.
func (r *programRepositoryImpl) Delete(ctx context.Context, id string) error {
	found, err := deleteByID(ctx, GetQuerier(ctx, r.db), "training_programs", id)
	if err != nil {
		return fmt.Errorf("failed to delete training program: %w", err)
	}
	if !found {
		return training.ErrProgramNotFound
	}
	return nil
}

// SyncStatuses implements training.ProgramRepository.
func (r *programRepositoryImpl) SyncStatuses(ctx context.Context, day time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH derived AS (
			SELECT id,
				   CASE
					   WHEN $1::date < start_date THEN 'upcoming'
					   WHEN $1::date > end_date THEN 'completed'
					   ELSE 'ongoing'
				   END AS status
			FROM training_programs
		)
		UPDATE training_programs t
		SET status = derived.status, updated_at = NOW()
		FROM derived
		WHERE t.id = derived.id AND t.status <> derived.status
		RETURNING t.id
	`
	ids, err := collectIDs(ctx, q, query, day.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to sync training statuses: %w", err)
	}
	return ids, nil
}
