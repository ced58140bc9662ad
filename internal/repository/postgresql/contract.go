package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/contract"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/database"
)

type contractRepositoryImpl struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.ContractRepository {
	return &contractRepositoryImpl{db: db}
}

const contractSelect = `
	SELECT c.id, c.employee_id, c.type, c.start_date, c.end_date, c.salary, c.status, c.created_at, c.updated_at,
		   NULLIF(TRIM(CONCAT(e.first_name, ' ', e.last_name)), '') AS employee_name
	FROM contracts c
	LEFT JOIN employees e ON c.employee_id = e.id
`

func scanContract(row scanner) (contract.Contract, error) {
	var c contract.Contract
	err := row.Scan(
		&c.ID, &c.EmployeeID, &c.Type, &c.StartDate, &c.EndDate, &c.Salary, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		&c.EmployeeName,
	)
	return c, err
}

// Create implements contract.ContractRepository.
func (r *contractRepositoryImpl) Create(ctx context.Context, c contract.Contract) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return contract.Contract{}, err
	}

	query := `
		INSERT INTO contracts (id, employee_id, type, start_date, end_date, salary, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err = q.Exec(ctx, query, id, c.EmployeeID, c.Type, c.StartDate, c.EndDate, c.Salary, c.Status)
	if err != nil {
		return contract.Contract{}, fmt.Errorf("failed to create contract: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements contract.ContractRepository.
func (r *contractRepositoryImpl) GetByID(ctx context.Context, id string) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanContract(q.QueryRow(ctx, contractSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if database.IsNoRows(err) {
			return contract.Contract{}, contract.ErrContractNotFound
		}
		return contract.Contract{}, fmt.Errorf("failed to get contract: %w", err)
	}
	return found, nil
}

// List implements contract.ContractRepository.
func (r *contractRepositoryImpl) List(ctx context.Context, filter contract.ContractFilter) ([]contract.Contract, int64, error) {
	q := GetQuerier(ctx, r.db)

	var where whereBuilder
	where.search(filter.Search, "e.first_name", "e.last_name", "e.email")
	where.eq("c.employee_id", filter.EmployeeID)
	where.eq("c.type", filter.Type)
	where.eq("c.status", filter.Status)

	var total int64
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM contracts c
		LEFT JOIN employees e ON c.employee_id = e.id
		%s
	`, where.clause())
	if err := q.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contracts: %w", err)
	}

	limit, args := where.page(filter.ListParams)
	query := fmt.Sprintf(`%s %s ORDER BY c.start_date DESC, c.id ASC %s`, contractSelect, where.clause(), limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	contracts := make([]contract.Contract, 0)
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan contract: %w", err)
		}
		contracts = append(contracts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return contracts, total, nil
}

// Update implements contract.ContractRepository.
func (r *contractRepositoryImpl) Update(ctx context.Context, req contract.UpdateContractRequest) error {
	q := GetQuerier(ctx, r.db)

	var set setBuilder
	set.setString("employee_id", req.EmployeeID)
	set.setString("type", req.Type)
	set.setString("start_date", req.StartDate)
	set.setOptional("end_date", req.EndDate)
	if req.Salary != nil {
		set.set("salary", *req.Salary)
	}
	set.setString("status", req.Status)

	found, err := set.exec(ctx, q, "contracts", req.ID)
	if err != nil {
		return fmt.Errorf("failed to update contract: %w", err)
	}
	if !found {
		return contract.ErrContractNotFound
	}
	return nil
}

// Delete implements contract.ContractRepository.
func (r *contractRepositoryImpl) Delete(ctx context.Context, id string) error {
	found, err := deleteByID(ctx, GetQuerier(ctx, r.db), "contracts", id)
	if err != nil {
		return fmt.Errorf("failed to delete contract: %w", err)
	}
	if !found {
		return contract.ErrContractNotFound
	}
	return nil
}

// ExpireEnded implements contract.ContractRepository.
func (r *contractRepositoryImpl) ExpireEnded(ctx context.Context, asOf time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE contracts
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'active' AND end_date IS NOT NULL AND end_date < $1::date
		RETURNING id
	`
	ids, err := collectIDs(ctx, q, query, asOf.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to expire contracts: %w", err)
	}
	return ids, nil
}

// collectIDs runs a statement returning a single id column.
func collectIDs(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]string, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
