package postgresql

import (
	"context"
	"fmt"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/organization/faculty"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/database"
)

type facultyRepositoryImpl struct {
	db *database.DB
}

func NewFacultyRepository(db *database.DB) faculty.FacultyRepository {
	return &facultyRepositoryImpl{db: db}
}

const facultySelect = `
	SELECT f.id, f.name, f.university_id, f.location, f.contact_email, f.created_at, f.updated_at,
		   u.name AS university_name
	FROM faculties f
	LEFT JOIN universities u ON f.university_id = u.id
`

func scanFaculty(row scanner) (faculty.Faculty, error) {
	var f faculty.Faculty
	err := row.Scan(
		&f.ID, &f.Name, &f.UniversityID, &f.Location, &f.ContactEmail, &f.CreatedAt, &f.UpdatedAt,
		&f.UniversityName,
	)
	return f, err
}

// Create implements faculty.FacultyRepository.
func (r *facultyRepositoryImpl) Create(ctx context.Context, f faculty.Faculty) (faculty.Faculty, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return faculty.Faculty{}, err
	}

	query := `
		INSERT INTO faculties (id, name, university_id, location, contact_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	if _, err := q.Exec(ctx, query, id, f.Name, f.UniversityID, f.Location, f.ContactEmail); err != nil {
		return faculty.Faculty{}, fmt.Errorf("failed to create faculty: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements faculty.FacultyRepository.
func (r *facultyRepositoryImpl) GetByID(ctx context.Context, id string) (faculty.Faculty, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanFaculty(q.QueryRow(ctx, facultySelect+` WHERE f.id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return faculty.Faculty{}, faculty.ErrFacultyNotFound
		}
		return faculty.Faculty{}, fmt.Errorf("failed to get faculty: %w", err)
	}
	return found, nil
}

// List implements faculty.FacultyRepository.
func (r *facultyRepositoryImpl) List(ctx context.Context, filter faculty.FacultyFilter) ([]faculty.Faculty, int64, error) {
	q := GetQuerier(ctx, r.db)

	var where whereBuilder
	where.search(filter.Search, "f.name", "f.location", "f.contact_email")
	where.eq("f.university_id", filter.UniversityID)

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM faculties f %s", where.clause())
	if err := q.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count faculties: %w", err)
	}

	limit, args := where.page(filter.ListParams)
	query := fmt.Sprintf(`%s %s ORDER BY f.name ASC, f.id ASC %s`, facultySelect, where.clause(), limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list faculties: %w", err)
	}
	defer rows.Close()

	faculties := make([]faculty.Faculty, 0)
	for rows.Next() {
		f, err := scanFaculty(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan faculty: %w", err)
		}
		faculties = append(faculties, f)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return faculties, total, nil
}

// Update implements faculty.FacultyRepository.
func (r *facultyRepositoryImpl) Update(ctx context.Context, req faculty.UpdateFacultyRequest) error {
	q := GetQuerier(ctx, r.db)

	var set setBuilder
	set.setString("name", req.Name)
	set.setOptional("university_id", req.UniversityID)
	set.setOptional("location", req.Location)
	set.setOptional("contact_email", req.ContactEmail)

	found, err := set.exec(ctx, q, "faculties", req.ID)
	if err != nil {
		return fmt.Errorf("failed to update faculty: %w", err)
	}
	if !found {
		return faculty.ErrFacultyNotFound
	}
	return nil
}

// Delete implements faculty.FacultyRepository.
func (r *facultyRepositoryImpl) Delete(ctx context.Context, id string) error {
	found, err := deleteByID(ctx, GetQuerier(ctx, r.db), "faculties", id)
	if err != nil {
		return fmt.Errorf("failed to delete faculty: %w", err)
	}
	if !found {
		return faculty.ErrFacultyNotFound
	}
	return nil
}
