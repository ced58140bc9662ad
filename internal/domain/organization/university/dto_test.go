package university

import (
	"testing"

	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateUniversityRequest_ContactEmail(t *testing.T) {
	empty := ""
	assert.NoError(t, (&UpdateUniversityRequest{ID: "u1", ContactEmail: &empty}).Validate())

	bad := "registrar@"
	var verrs validator.ValidationErrors
	require.ErrorAs(t, (&UpdateUniversityRequest{ID: "u1", ContactEmail: &bad}).Validate(), &verrs)
	assert.Equal(t, "invalid email format", verrs.ToMap()["contact_email"])
}
