package postgresql

import (
	"testing"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestWhereBuilder(t *testing.T) {
	var w whereBuilder
	w.search(" ada ", "e.first_name", "e.email")
	w.eq("e.status", strPtr("active"))
	w.eq("e.job_id", nil)
	w.eq("e.department_id", strPtr(""))

	assert.Equal(t, "WHERE (e.first_name ILIKE $1 OR e.email ILIKE $1) AND e.status = $2", w.clause())
	assert.Equal(t, []interface{}{"%ada%", "active"}, w.args)

	suffix, args := w.page(shared.ListParams{Page: 3, Limit: 10})
	assert.Equal(t, "LIMIT $3 OFFSET $4", suffix)
	assert.Equal(t, []interface{}{"%ada%", "active", 10, 20}, args)
	assert.Len(t, w.args, 2)
}

func TestWhereBuilder_Empty(t *testing.T) {
	var w whereBuilder
	w.search("   ", "name")
	assert.Equal(t, "", w.clause())

	suffix, args := w.page(shared.ListParams{})
	assert.Equal(t, "", suffix)
	assert.Empty(t, args)
}

func TestSetBuilder(t *testing.T) {
	var s setBuilder
	s.setString("name", strPtr("Cairo"))
	s.setString("title", nil)
	s.setOptional("location", strPtr(""))
	s.setOptional("contact_email", nil)

	assert.Equal(t, []string{"name = $1", "location = $2"}, s.sets)
	assert.Equal(t, []interface{}{"Cairo", nil}, s.args)
}

func TestNewID(t *testing.T) {
	a, err := newID()
	assert.NoError(t, err)
	b, err := newID()
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 36)
}
