package postgresql

import (
	"context"
	"fmt"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeSelect = `
	SELECT e.id, e.first_name, e.last_name, e.email, e.phone, e.department_id, e.job_id,
		   e.hire_date, e.status, e.gender, e.created_at, e.updated_at,
		   d.name AS department_name,
		   j.title AS job_title
	FROM employees e
	LEFT JOIN departments d ON e.department_id = d.id
	LEFT JOIN jobs j ON e.job_id = j.id
`

func scanEmployee(row scanner) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone, &emp.DepartmentID, &emp.JobID,
		&emp.HireDate, &emp.Status, &emp.Gender, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.DepartmentName, &emp.JobTitle,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	id, err := newID()
	if err != nil {
		return employee.Employee{}, err
	}

	query := `
		INSERT INTO employees (
			id, first_name, last_name, email, phone, department_id, job_id,
			hire_date, status, gender, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`
	_, err = q.Exec(ctx, query,
		id,
		newEmployee.FirstName,
		newEmployee.LastName,
		newEmployee.Email,
		newEmployee.Phone,
		newEmployee.DepartmentID,
		newEmployee.JobID,
		newEmployee.HireDate,
		newEmployee.Status,
		newEmployee.Gender,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e.GetByID(ctx, id)
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	found, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return found, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	var where whereBuilder
	where.search(filter.Search, "e.first_name", "e.last_name", "e.email", "CONCAT(e.first_name, ' ', e.last_name)")
	where.eq("e.department_id", filter.DepartmentID)
	where.eq("e.job_id", filter.JobID)
	where.eq("e.status", filter.Status)

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees e %s", where.clause())
	if err := q.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	limit, args := where.page(filter.ListParams)
	query := fmt.Sprintf(`%s %s ORDER BY e.first_name ASC, e.last_name ASC, e.id ASC %s`, employeeSelect, where.clause(), limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, total, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, e.db)

	var set setBuilder
	set.setString("first_name", req.FirstName)
	set.setString("last_name", req.LastName)
	set.setString("email", req.Email)
	set.setOptional("phone", req.Phone)
	set.setOptional("department_id", req.DepartmentID)
	set.setOptional("job_id", req.JobID)
	set.setString("hire_date", req.HireDate)
	set.setString("status", req.Status)
	set.setOptional("gender", req.Gender)

	found, err := set.exec(ctx, q, "employees", req.ID)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if !found {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	found, err := deleteByID(ctx, GetQuerier(ctx, e.db), "employees", id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if !found {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
