package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestList_PageMeta(t *testing.T) {
	rec := httptest.NewRecorder()
	List(rec, []string{"a"}, &shared.PageInfo{Page: 2, Limit: 1, TotalItems: 3, TotalPages: 3})

	body := decode(t, rec)
	assert.True(t, body.Success)
	require.NotNil(t, body.Meta)
	assert.Equal(t, 2, body.Meta.Page)
	assert.Equal(t, int64(3), body.Meta.TotalItems)

	rec = httptest.NewRecorder()
	List(rec, []string{}, nil)
	assert.Nil(t, decode(t, rec).Meta)
}

func TestHandleError_Codes(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{validator.ValidationErrors{{Field: "email", Message: "invalid email format"}}, http.StatusUnprocessableEntity, CodeValidation},
		{fmt.Errorf("update: %w", employee.ErrEmployeeNotFound), http.StatusNotFound, CodeNotFound},
		{employee.ErrEmployeeInUse, http.StatusConflict, CodeConflict},
		{employee.ErrInvalidReference, http.StatusUnprocessableEntity, CodeInvalidReference},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		HandleError(rec, c.err)

		assert.Equal(t, c.status, rec.Code, c.err.Error())
		body := decode(t, rec)
		assert.False(t, body.Success)
		require.NotNil(t, body.Error)
		assert.Equal(t, c.code, body.Error.Code)
	}
}

func TestValidationError_Details(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"end_date": "end_date must not be before start_date"})

	body := decode(t, rec)
	assert.Equal(t, "Validation failed", body.Error.Message)
	assert.Equal(t, "end_date must not be before start_date", body.Error.Details["end_date"])
}
