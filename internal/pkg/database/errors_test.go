package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := fmt.Errorf("delete: %w", &pgconn.PgError{Code: "23503"})
	check := &pgconn.PgError{Code: "23514"}
	noRows := fmt.Errorf("get: %w", pgx.ErrNoRows)

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.True(t, IsCheckViolation(check))
	assert.True(t, IsNoRows(noRows))
	assert.False(t, IsNoRows(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}
