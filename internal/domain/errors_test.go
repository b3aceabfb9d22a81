package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_EsInvalidInput(t *testing.T) {
	err := fmt.Errorf("crear cuota: %w", NewValidationError("monto", "debe ser mayor a 0"))

	assert.True(t, errors.Is(err, ErrInvalidInput))
	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "monto", ve.Field)
	assert.Equal(t, "monto: debe ser mayor a 0", ve.Error())
}

func TestNotFoundError_EsNotFound(t *testing.T) {
	err := NewNotFoundError("cuota", "abc")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "abc")
}
