package postgresql

import (
	"context"
	"fmt"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/organization/university"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/database"
)

type universityRepositoryImpl struct {
	db *database.DB
}

func NewUniversityRepository(db *database.DB) university.UniversityRepository {
	return &universityRepositoryImpl{db: db}
}

const universityColumns = `id, name, location, contact_email, created_at, updated_at`

func scanUniversity(row scanner) (university.University, error) {
	var u university.University
	err := row.Scan(&u.ID, &u.Name, &u.Location, &u.ContactEmail, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Create implements university.UniversityRepository.
func (r *universityRepositoryImpl) Create(ctx context.Context, u university.University) (university.University, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return university.University{}, err
	}

	query := `
		INSERT INTO universities (id, name, location, contact_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + universityColumns

	created, err := scanUniversity(q.QueryRow(ctx, query, id, u.Name, u.Location, u.ContactEmail))
	if err != nil {
		return university.University{}, fmt.Errorf("failed to create university: %w", err)
	}
	return created, nil
}

// GetByID implements university.UniversityRepository.
func (r *universityRepositoryImpl) GetByID(ctx context.Context, id string) (university.University, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + universityColumns + ` FROM universities WHERE id = $1`

	found, err := scanUniversity(q.QueryRow(ctx, query, id))
	if err != nil {
		if database.IsNoRows(err) {
			return university.University{}, university.ErrUniversityNotFound
		}
		return university.University{}, fmt.Errorf("failed to get university: %w", err)
	}
	return found, nil
}

// List implements university.UniversityRepository.
func (r *universityRepositoryImpl) List(ctx context.Context, filter university.UniversityFilter) ([]university.University, int64, error) {
	q := GetQuerier(ctx, r.db)

	var where whereBuilder
	where.search(filter.Search, "name", "location", "contact_email")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM universities %s", where.clause())
	if err := q.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count universities: %w", err)
	}

	limit, args := where.page(filter.ListParams)
	query := fmt.Sprintf(`
		SELECT %s
		FROM universities
		%s
		ORDER BY name ASC, id ASC
		%s
	`, universityColumns, where.clause(), limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list universities: %w", err)
	}
	defer rows.Close()

	universities := make([]university.University, 0)
	for rows.Next() {
		u, err := scanUniversity(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan university: %w", err)
		}
		universities = append(universities, u)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return universities, total, nil
}

// Update implements university.UniversityRepository.
func (r *universityRepositoryImpl) Update(ctx context.Context, req university.UpdateUniversityRequest) error {
	q := GetQuerier(ctx, r.db)

	var set setBuilder
	set.setString("name", req.Name)
	set.setOptional("location", req.Location)
	set.setOptional("contact_email", req.ContactEmail)

	found, err := set.exec(ctx, q, "universities", req.ID)
	if err != nil {
		return fmt.Errorf("failed to update university: %w", err)
	}
	if !found {
		return university.ErrUniversityNotFound
	}
	return nil
}

// Delete implements university.UniversityRepository.
func (r *universityRepositoryImpl) Delete(ctx context.Context, id string) error {
	found, err := deleteByID(ctx, GetQuerier(ctx, r.db), "universities", id)
	if err != nil {
		return fmt.Errorf("failed to delete university: %w", err)
	}
	if !found {
		return university.ErrUniversityNotFound
	}
	return nil
}
