package contract

import (
	"testing"

	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdateContractRequest_ClearEndDate(t *testing.T) {
	req := UpdateContractRequest{ID: "c1", EndDate: strPtr("")}
	assert.NoError(t, req.Validate())
}

func TestUpdateContractRequest_InvalidEndDate(t *testing.T) {
	req := UpdateContractRequest{ID: "c1", EndDate: strPtr("2024-02-30")}

	var verrs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &verrs)
	assert.Equal(t, "end_date must be a date in YYYY-MM-DD format", verrs.ToMap()["end_date"])
}

func TestCreateContractRequest_EndDate(t *testing.T) {
	salary := decimal.NewFromInt(12000)
	req := CreateContractRequest{EmployeeID: "e1", StartDate: "2024-01-01", EndDate: strPtr(""), Salary: &salary}
	assert.NoError(t, req.Validate())

	req.EndDate = strPtr("2023-12-31")
	var verrs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &verrs)
	assert.Contains(t, verrs.ToMap(), "end_date")
}
