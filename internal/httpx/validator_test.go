package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registerForm struct {
	Name                 string `json:"name" validate:"required,max=250"`
	Email                string `json:"email" validate:"required,email,max=250"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct returns nil", func(t *testing.T) {
		form := registerForm{
			Name:                 "A User",
			Email:                "a@example.com",
			Password:             "password123",
			PasswordConfirmation: "password123",
		}
		assert.Nil(t, ValidateStruct(form))
	})

	t.Run("errors are keyed by json field name", func(t *testing.T) {
		fieldErrors := ValidateStruct(registerForm{})

		assert.Contains(t, fieldErrors, "name")
		assert.Contains(t, fieldErrors, "email")
		assert.Contains(t, fieldErrors, "password")
		assert.NotContains(t, fieldErrors, "Name")
	})

	t.Run("message wording per rule", func(t *testing.T) {
		fieldErrors := ValidateStruct(registerForm{
			Name:                 "A User",
			Email:                "not-an-email",
			Password:             "short",
			PasswordConfirmation: "different",
		})

		assert.Equal(t, []string{"The email must be a valid email address."}, fieldErrors["email"])
		assert.Equal(t, []string{"The password must be at least 8 characters."}, fieldErrors["password"])
		assert.Equal(t, []string{"The password confirmation does not match."}, fieldErrors["password_confirmation"])
	})

	t.Run("required message", func(t *testing.T) {
		fieldErrors := ValidateStruct(registerForm{
			Email:                "a@example.com",
			Password:             "password123",
			PasswordConfirmation: "password123",
		})

		assert.Equal(t, []string{"The name field is required."}, fieldErrors["name"])
	})
}
