package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func TestValidate_ValidStruct_ReturnsNil(t *testing.T) {
	err := Validate(loginForm{Email: "jane@x.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestValidate_MissingFields_ReportsAll(t *testing.T) {
	err := Validate(loginForm{})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "is required", verr.Fields()["email"])
	assert.Equal(t, "is required", verr.Fields()["password"])
}

func TestValidate_BadEmailAndShortPassword(t *testing.T) {
	err := Validate(loginForm{Email: "not-an-email", Password: "abc"})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "must be a valid email address", verr.Fields()["email"])
	assert.Equal(t, "must be at least 6 characters", verr.Fields()["password"])
}

func TestValidate_ErrorStringMentionsField(t *testing.T) {
	err := Validate(loginForm{Email: "jane@x.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}
