package errorz

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMapping(t *testing.T) {
	tests := []struct {
		kind   Kind
		code   string
		status int
	}{
		{KindNotFound, "not_found", http.StatusNotFound},
		{KindConflict, "conflict", http.StatusConflict},
		{KindValidation, "validation_error", http.StatusUnprocessableEntity},
		{KindInternal, "internal_error", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, tt.kind.Code())
		assert.Equal(t, tt.status, tt.kind.Status())
	}
}

func TestKindOfWrapped(t *testing.T) {
	cause := errors.New("duplicate key")
	err := fmt.Errorf("create user: %w", Conflict(cause, "User with email %s already exists", "a@b.c"))

	assert.Equal(t, KindConflict, KindOf(err))
	assert.True(t, Is(err, KindConflict))
	assert.ErrorIs(t, err, cause)

	var e *Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, "User with email a@b.c already exists", e.Message)

	assert.Equal(t, KindInternal, KindOf(cause))
	assert.False(t, Is(nil, KindInternal))
	assert.Equal(t, "not_found: Question with id 7 not found", NotFound("Question with id %d not found", 7).Error())
}
