package postgresql

import (
	"context"
	"fmt"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/performance/cycle"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/database"
)

type cycleRepositoryImpl struct {
	db *database.DB
}

func NewCycleRepository(db *database.DB) cycle.CycleRepository {
	return &cycleRepositoryImpl{db: db}
}

const cycleColumns = `id, name, start_date, end_date, status, description, created_at, updated_at`

func scanCycle(row scanner) (cycle.Cycle, error) {
	var c cycle.Cycle
	err := row.Scan(&c.ID, &c.Name, &c.StartDate, &c.EndDate, &c.Status, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// Create implements cycle.CycleRepository.
func (r *cycleRepositoryImpl) Create(ctx context.Context, c cycle.Cycle) (cycle.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return cycle.Cycle{}, err
	}

	query := `
		INSERT INTO performance_cycles (id, name, start_date, end_date, status, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + cycleColumns

	created, err := scanCycle(q.QueryRow(ctx, query, id, c.Name, c.StartDate, c.EndDate, c.Status, c.Description))
	if err != nil {
		return cycle.Cycle{}, fmt.Errorf("failed to create performance cycle: %w", err)
	}
	return created, nil
}

// GetByID implements cycle.CycleRepository.
func (r *cycleRepositoryImpl) GetByID(ctx context.Context, id string) (cycle.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanCycle(q.QueryRow(ctx, `SELECT `+cycleColumns+` FROM performance_cycles WHERE id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return cycle.Cycle{}, cycle.ErrCycleNotFound
		}
		return cycle.Cycle{}, fmt.Errorf("failed to get performance cycle: %w", err)
	}
	return found, nil
}

// List implements cycle.CycleRepository.
func (r *cycleRepositoryImpl) List(ctx context.Context, filter cycle.CycleFilter) ([]cycle.Cycle, int64, error) {
	q := GetQuerier(ctx, r.db)

	var where whereBuilder
	where.search(filter.Search, "name", "description")
	where.eq("status", filter.Status)

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM performance_cycles %s", where.clause())
	if err := q.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count performance cycles: %w", err)
	}

	limit, args := where.page(filter.ListParams)
	query := fmt.Sprintf(`SELECT %s FROM performance_cycles %s ORDER BY start_date DESC, id ASC %s`,
		cycleColumns, where.clause(), limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list performance cycles: %w", err)
	}
	defer rows.Close()

	cycles := make([]cycle.Cycle, 0)
	for rows.Next() {
		c, err := scanCycle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan performance cycle: %w", err)
		}
		cycles = append(cycles, c)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return cycles, total, nil
}

// Update implements cycle.CycleRepository.
func (r *cycleRepositoryImpl) Update(ctx context.Context, req cycle.UpdateCycleRequest) error {
	q := GetQuerier(ctx, r.db)

	var set setBuilder
	set.setString("name", req.Name)
	set.setString("start_date", req.StartDate)
	set.setString("end_date", req.EndDate)
	set.setString("status", req.Status)
	set.setOptional("description", req.Description)

	found, err := set.exec(ctx, q, "performance_cycles", req.ID)
	if err != nil {
		return fmt.Errorf("failed to update performance cycle: %w", err)
	}
	if !found {
		return cycle.ErrCycleNotFound
	}
	return nil
}

// Delete implements cycle.CycleRepository.
func (r *cycleRepositoryImpl) Delete(ctx context.Context, id string) error {
	found, err := deleteByID(ctx, GetQuerier(ctx, r.db), "performance_cycles", id)
	if err != nil {
		return fmt.Errorf("failed to delete performance cycle: %w", err)
	}
	if !found {
		return cycle.ErrCycleNotFound
	}
	return nil
}
