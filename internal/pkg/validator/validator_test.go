package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

type sampleRequest struct {
	Name      string  `json:"name" validate:"notblank,max=10"`
	Email     *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	StartDate string  `json:"start_date" validate:"required,date"`
	Status    string  `json:"status" validate:"omitempty,oneof=open closed"`
	Capacity  int     `json:"capacity" validate:"gt=0"`
}

func TestStruct_UsesJSONFieldNames(t *testing.T) {
	bad := "not-an-email"
	errs := Struct(&sampleRequest{
		Name:      "  ",
		Email:     &bad,
		StartDate: "2024-13-40",
		Status:    "pending",
	})
	require.NotEmpty(t, errs)

	m := errs.ToMap()
	assert.Equal(t, "name is required", m["name"])
	assert.Equal(t, "invalid email format", m["contact_email"])
	assert.Equal(t, "start_date must be a date in YYYY-MM-DD format", m["start_date"])
	assert.Equal(t, "status must be one of: open, closed", m["status"])
	assert.Equal(t, "capacity must be greater than 0", m["capacity"])
}

func TestStruct_Valid(t *testing.T) {
	errs := Struct(&sampleRequest{Name: "Intro", StartDate: "2024-01-01", Capacity: 3})
	assert.Empty(t, errs)
	assert.NoError(t, errs.OrNil())
}

func TestDateNotBefore(t *testing.T) {
	var errs ValidationErrors
	DateNotBefore(&errs, "end_date", "2024-02-01", "2024-01-31")
	require.Len(t, errs, 1)
	assert.Equal(t, "end_date", errs[0].Field)

	errs = nil
	DateNotBefore(&errs, "end_date", "2024-02-01", "2024-02-01")
	DateNotBefore(&errs, "end_date", "garbage", "2024-02-01")
	assert.Empty(t, errs)
}

func TestValidationErrors_ErrorString(t *testing.T) {
	errs := ValidationErrors{{Field: "a", Message: "x"}, {Field: "b", Message: "y"}}
	assert.Equal(t, "a: x; b: y", errs.Error())
}

type nullableRequest struct {
	EndDate *string `json:"end_date,omitempty" validate:"omitnil,dateorempty"`
	Email   *string `json:"contact_email,omitempty" validate:"omitnil,emailorempty"`
}

func TestStruct_EmptyPointerClears(t *testing.T) {
	empty := ""
	assert.Empty(t, Struct(&nullableRequest{EndDate: &empty, Email: &empty}))
	assert.Empty(t, Struct(&nullableRequest{}))

	date, email := "01/02/2024", "nobody"
	m := Struct(&nullableRequest{EndDate: &date, Email: &email}).ToMap()
	assert.Equal(t, "end_date must be a date in YYYY-MM-DD format", m["end_date"])
	assert.Equal(t, "invalid email format", m["contact_email"])
}
