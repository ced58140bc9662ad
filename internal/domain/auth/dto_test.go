package auth

import (
	"testing"

	"github.com/giu-hrms/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpRequest_Validate(t *testing.T) {
	valid := SignUpRequest{
		FirstName:       "Mona",
		LastName:        "Adel",
		Email:           "mona@giu.edu",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
	assert.NoError(t, valid.Validate())

	mismatch := valid
	mismatch.ConfirmPassword = "secret2"
	err := mismatch.Validate()
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "passwords don't match", verrs.ToMap()["confirm_password"])

	short := valid
	short.Password, short.ConfirmPassword = "abc", "abc"
	require.ErrorAs(t, short.Validate(), &verrs)
	assert.Contains(t, verrs.ToMap(), "password")

	blank := valid
	blank.FirstName = "  "
	require.ErrorAs(t, blank.Validate(), &verrs)
	assert.Equal(t, "first_name is required", verrs.ToMap()["first_name"])
}

func TestSignInRequest_Validate(t *testing.T) {
	req := SignInRequest{Email: "not-email", Password: "123456"}
	var verrs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &verrs)
	assert.Equal(t, "invalid email format", verrs.ToMap()["email"])

	req = SignInRequest{Email: " HR@GIU.EDU ", Password: "123456"}
	req.Normalize()
	assert.Equal(t, "hr@giu.edu", req.Email)
	assert.NoError(t, req.Validate())
}
