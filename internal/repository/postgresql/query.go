package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// newID returns a time-ordered identifier for a new row.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), nil
}

// decimalPtr turns a scanned NUMERIC column into an optional amount.
func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// whereBuilder collects list filter conditions with their positional arguments.
type whereBuilder struct {
	conditions []string
	args       []interface{}
}

// add binds arg to every $%d verb in format.
func (w *whereBuilder) add(format string, arg interface{}) {
	w.args = append(w.args, arg)
	idx := make([]interface{}, strings.Count(format, "%d"))
	for i := range idx {
		idx[i] = len(w.args)
	}
	w.conditions = append(w.conditions, fmt.Sprintf(format, idx...))
}

func (w *whereBuilder) eq(column string, value *string) {
	if value == nil || *value == "" {
		return
	}
	w.add(column+" = $%d", *value)
}

// search matches term case-insensitively against any of columns.
func (w *whereBuilder) search(term string, columns ...string) {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return
	}
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = c + " ILIKE $%d"
	}
	w.add("("+strings.Join(parts, " OR ")+")", "%"+term+"%")
}

func (w *whereBuilder) clause() string {
	if len(w.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.conditions, " AND ")
}

// page appends LIMIT/OFFSET arguments when p is paginated and returns the SQL suffix.
func (w *whereBuilder) page(p shared.ListParams) (string, []interface{}) {
	if !p.Paginated() {
		return "", w.args
	}
	n := len(w.args)
	args := append(append([]interface{}{}, w.args...), p.Limit, p.Offset())
	return fmt.Sprintf("LIMIT $%d OFFSET $%d", n+1, n+2), args
}

// setBuilder builds the SET list of a partial UPDATE.
type setBuilder struct {
	sets []string
	args []interface{}
}

func (s *setBuilder) set(column string, value interface{}) {
	s.args = append(s.args, value)
	s.sets = append(s.sets, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

// setOptional skips nil and stores NULL for an empty string.
func (s *setBuilder) setOptional(column string, value *string) {
	if value == nil {
		return
	}
	if *value == "" {
		s.set(column, nil)
		return
	}
	s.set(column, *value)
}

func (s *setBuilder) setString(column string, value *string) {
	if value != nil {
		s.set(column, *value)
	}
}

// exec runs the update against table and reports whether a row matched id.
func (s *setBuilder) exec(ctx context.Context, q database.Querier, table, id string) (bool, error) {
	query := "UPDATE " + table + " SET updated_at = NOW()"
	for _, set := range s.sets {
		query += ", " + set
	}
	query += fmt.Sprintf(" WHERE id = $%d", len(s.args)+1)

	commandTag, err := q.Exec(ctx, query, append(s.args, id)...)
	if err != nil {
		return false, err
	}
	return commandTag.RowsAffected() > 0, nil
}

// deleteByID removes one row and reports whether it existed.
func deleteByID(ctx context.Context, q database.Querier, table, id string) (bool, error) {
	commandTag, err := q.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return commandTag.RowsAffected() > 0, nil
}
