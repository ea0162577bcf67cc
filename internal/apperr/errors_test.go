package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/user-directory/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("name is required")

	assert.Equal(t, "name is required", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewFieldValidation(t *testing.T) {
	err := apperr.NewFieldValidation("users[2].email", "is required")
	assert.Equal(t, "users[2].email: is required", err.Error())
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("yaml: line 3: mapping values are not allowed")
	err := apperr.NewValidationWrap("invalid fixture", inner)

	assert.Equal(t, "invalid fixture: yaml: line 3: mapping values are not allowed", err.Error())
	assert.ErrorIs(t, err, inner)
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("duplicate email")

	wrapped := fmt.Errorf("failed to load fixture: %w", original)
	doubleWrapped := fmt.Errorf("seed error: %w", wrapped)

	var ve *apperr.ValidationError
	require.True(t, errors.As(doubleWrapped, &ve))
	assert.Equal(t, "duplicate email", ve.Message)
}

func TestValidationError_NotFoundForPlainErrors(t *testing.T) {
	wrapped := fmt.Errorf("storage error: %w", errors.New("database connection failed"))

	var ve *apperr.ValidationError
	assert.False(t, errors.As(wrapped, &ve))
}
