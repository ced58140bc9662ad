package postgresql

import (
	"context"
	"fmt"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/organization/department"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

const departmentSelect = `
	SELECT d.id, d.name, d.faculty_id, d.manager_id, d.location, d.contact_email, d.created_at, d.updated_at,
		   f.name AS faculty_name,
		   NULLIF(TRIM(CONCAT(m.first_name, ' ', m.last_name)), '') AS manager_name
	FROM departments d
	LEFT JOIN faculties f ON d.faculty_id = f.id
	LEFT JOIN employees m ON d.manager_id = m.id
`

func scanDepartment(row scanner) (department.Department, error) {
	var d department.Department
	err := row.Scan(
		&d.ID, &d.Name, &d.FacultyID, &d.ManagerID, &d.Location, &d.ContactEmail, &d.CreatedAt, &d.UpdatedAt,
		&d.FacultyName, &d.ManagerName,
	)
	return d, err
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return department.Department{}, err
	}

	query := `
		INSERT INTO departments (id, name, faculty_id, manager_id, location, contact_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	if _, err := q.Exec(ctx, query, id, d.Name, d.FacultyID, d.ManagerID, d.Location, d.ContactEmail); err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanDepartment(q.QueryRow(ctx, departmentSelect+` WHERE d.id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}
	return found, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context, filter department.DepartmentFilter) ([]department.Department, int64, error) {
	q := GetQuerier(ctx, r.db)

	var where whereBuilder
	where.search(filter.Search, "d.name", "d.location", "d.contact_email")
	where.eq("d.faculty_id", filter.FacultyID)

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM departments d %s", where.clause())
	if err := q.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count departments: %w", err)
	}

	limit, args := where.page(filter.ListParams)
	query := fmt.Sprintf(`%s %s ORDER BY d.name ASC, d.id ASC %s`, departmentSelect, where.clause(), limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	departments := make([]department.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return departments, total, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) error {
	q := GetQuerier(ctx, r.db)

	var set setBuilder
	set.setString("name", req.Name)
	set.setOptional("faculty_id", req.FacultyID)
	set.setOptional("manager_id", req.ManagerID)
	set.setOptional("location", req.Location)
	set.setOptional("contact_email", req.ContactEmail)

	found, err := set.exec(ctx, q, "departments", req.ID)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}
	if !found {
		return department.ErrDepartmentNotFound
	}
	return nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	found, err := deleteByID(ctx, GetQuerier(ctx, r.db), "departments", id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if !found {
		return department.ErrDepartmentNotFound
	}
	return nil
}
