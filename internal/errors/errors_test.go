package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "fee"}
		assert.Equal(t, "fee not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "fee"}
		err2 := &NotFoundError{Entity: "fee"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "fee"}
		err2 := &NotFoundError{Entity: "user"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrUserNotFound, ErrUserNotFound))
		assert.False(t, errors.Is(ErrUserNotFound, ErrFeeNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrUserNotFound))
		assert.True(t, IsNotFound(ErrOrganizationNotFound))
		assert.False(t, IsNotFound(ErrUserExists))
	})

	t.Run("IsNotFound sees through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("activate: %w", ErrOrganizationNotFound)
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user", Context: "with this id"}
		assert.Equal(t, "user already exists with this id", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "message", Context: "with this id"}
		err2 := &AlreadyExistsError{Entity: "message", Context: "with this id"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.True(t, IsAlreadyExists(ErrMessageExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrUserNotFound))
	})
}

func TestAuthenticationErrors(t *testing.T) {
	t.Run("sentinels", func(t *testing.T) {
		assert.Equal(t, "authorization token is missing", ErrMissingToken.Error())
		assert.Equal(t, "authorization token is invalid", ErrInvalidToken.Error())
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrMissingToken))
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.False(t, IsAuthentication(ErrUserNotFound))
	})
}

func TestConfigurationErrors(t *testing.T) {
	t.Run("payment key sentinel", func(t *testing.T) {
		assert.Equal(t, "PAYSTACK_PUBLIC_KEY is not defined in the environment variables", ErrPaymentKeyMissing.Error())
	})

	t.Run("IsConfiguration helper", func(t *testing.T) {
		assert.True(t, IsConfiguration(ErrPaymentKeyMissing))
		assert.False(t, IsConfiguration(ErrInvalidToken))
	})

	t.Run("IsConfiguration sees through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("config validation failed: %w", ErrPaymentKeyMissing)
		assert.True(t, IsConfiguration(wrapped))
	})
}

func TestHelperConstructors(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("receipt")
		assert.Equal(t, "receipt not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("receipt", "for this reference")
		assert.Equal(t, "receipt already exists for this reference", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewAuthenticationError", func(t *testing.T) {
		err := NewAuthenticationError("token revoked")
		assert.Equal(t, "token revoked", err.Error())
		assert.True(t, IsAuthentication(err))
	})
}
