package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type rechargePayload struct {
	UserID  string `validate:"required"`
	Credits int64  `validate:"required,gt=0"`
}

type registerPayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("Valid payload has no errors", func(t *testing.T) {
		errs := ValidateStruct(rechargePayload{UserID: "user-1", Credits: 100})
		assert.Empty(t, errs)
	})

	t.Run("Missing required fields", func(t *testing.T) {
		errs := ValidateStruct(rechargePayload{})
		assert.Len(t, errs, 2)
		assert.Equal(t, "UserID", errs[0].Field)
		assert.Equal(t, "required", errs[0].Tag)
		assert.Equal(t, "UserID is required", errs[0].Message)
	})

	t.Run("Non-positive credits", func(t *testing.T) {
		errs := ValidateStruct(rechargePayload{UserID: "user-1", Credits: -5})
		assert.Len(t, errs, 1)
		assert.Equal(t, "gt", errs[0].Tag)
		assert.Equal(t, "Credits must be greater than 0", errs[0].Message)
	})

	t.Run("Bad email", func(t *testing.T) {
		errs := ValidateStruct(registerPayload{Email: "not-an-email", Password: "longenough"})
		assert.Len(t, errs, 1)
		assert.Equal(t, "Email must be a valid email address", errs[0].Message)
	})

	t.Run("Short password", func(t *testing.T) {
		errs := ValidateStruct(registerPayload{Email: "a@b.com", Password: "short"})
		assert.Len(t, errs, 1)
		assert.Equal(t, "Password must be at least 8 characters", errs[0].Message)
	})
}
