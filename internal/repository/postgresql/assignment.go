package postgresql

import (
	"context"
	"fmt"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/assignment"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

const assignmentSelect = `
	SELECT a.id, a.employee_id, a.job_id, a.department_id, a.start_date, a.end_date, a.salary, a.status,
		   a.created_at, a.updated_at,
		   NULLIF(TRIM(CONCAT(e.first_name, ' ', e.last_name)), '') AS employee_name,
		   j.title AS job_title,
		   d.name AS department_name
	FROM job_assignments a
	LEFT JOIN employees e ON a.employee_id = e.id
	LEFT JOIN jobs j ON a.job_id = j.id
	LEFT JOIN departments d ON a.department_id = d.id
`

func scanAssignment(row scanner) (assignment.Assignment, error) {
	var (
		a      assignment.Assignment
		salary decimal.NullDecimal
	)
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.JobID, &a.DepartmentID, &a.StartDate, &a.EndDate, &salary, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName, &a.JobTitle, &a.DepartmentName,
	)
	a.Salary = decimalPtr(salary)
	return a, err
}

// Create implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return assignment.Assignment{}, err
	}

	query := `
		INSERT INTO job_assignments (
			id, employee_id, job_id, department_id, start_date, end_date, salary, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err = q.Exec(ctx, query, id, a.EmployeeID, a.JobID, a.DepartmentID, a.StartDate, a.EndDate, a.Salary, a.Status)
	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("failed to create job assignment: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id string) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanAssignment(q.QueryRow(ctx, assignmentSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return assignment.Assignment{}, assignment.ErrAssignmentNotFound
		}
		return assignment.Assignment{}, fmt.Errorf("failed to get job assignment: %w", err)
	}
	return found, nil
}

// List implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) List(ctx context.Context, filter assignment.AssignmentFilter) ([]assignment.Assignment, int64, error) {
	q := GetQuerier(ctx, r.db)

	var where whereBuilder
	where.search(filter.Search, "e.first_name", "e.last_name", "j.title", "d.name")
	where.eq("a.employee_id", filter.EmployeeID)
	where.eq("a.job_id", filter.JobID)
	where.eq("a.department_id", filter.DepartmentID)
	where.eq("a.status", filter.Status)

	var total int64
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM job_assignments a
		LEFT JOIN employees e ON a.employee_id = e.id
		LEFT JOIN jobs j ON a.job_id = j.id
		LEFT JOIN departments d ON a.department_id = d.id
		%s
	`, where.clause())
	if err := q.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count job assignments: %w", err)
	}

	limit, args := where.page(filter.ListParams)
	query := fmt.Sprintf(`%s %s ORDER BY a.start_date DESC, a.id ASC %s`, assignmentSelect, where.clause(), limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list job assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]assignment.Assignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan job assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return assignments, total, nil
}

// Update implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Update(ctx context.Context, req assignment.UpdateAssignmentRequest) error {
	q := GetQuerier(ctx, r.db)

	var set setBuilder
	set.setString("employee_id", req.EmployeeID)
	set.setString("job_id", req.JobID)
	set.setOptional("department_id", req.DepartmentID)
	set.setString("start_date", req.StartDate)
	set.setOptional("end_date", req.EndDate)
	if req.Salary != nil {
		set.set("salary", *req.Salary)
	}
	set.setString("status", req.Status)

	found, err := set.exec(ctx, q, "job_assignments", req.ID)
	if err != nil {
		return fmt.Errorf("failed to update job assignment: %w", err)
	}
	if !found {
		return assignment.ErrAssignmentNotFound
	}
	return nil
}

// Delete implements assignment.AssignmentRepository.
func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	found, err := deleteByID(ctx, GetQuerier(ctx, r.db), "job_assignments", id)
	if err != nil {
		return fmt.Errorf("failed to delete job assignment: %w", err)
	}
	if !found {
		return assignment.ErrAssignmentNotFound
	}
	return nil
}
