package assignment

import (
	"testing"

	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdateAssignmentRequest_ClearEndDate(t *testing.T) {
	req := UpdateAssignmentRequest{ID: "a1", EndDate: strPtr("")}
	assert.NoError(t, req.Validate())

	req.EndDate = strPtr("next week")
	var verrs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &verrs)
	assert.Equal(t, "end_date must be a date in YYYY-MM-DD format", verrs.ToMap()["end_date"])
}

func TestCreateAssignmentRequest_EmptyEndDate(t *testing.T) {
	req := CreateAssignmentRequest{EmployeeID: "e1", JobID: "j1", StartDate: "2024-01-01", EndDate: strPtr("")}
	assert.NoError(t, req.Validate())
}
