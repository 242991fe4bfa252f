package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindHTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.HTTPStatus())
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("task not found")))
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))

	// Wrapping keeps the kind visible
	wrapped := fmt.Errorf("loading task: %w", Forbidden("nope"))
	assert.Equal(t, KindForbidden, KindOf(wrapped))

	// Foreign errors count as internal
	assert.Equal(t, KindInternal, KindOf(errors.New("disk on fire")))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "task not found", MessageOf(NotFound("task not found")))

	wrapped := fmt.Errorf("context: %w", Validation("name required"))
	assert.Equal(t, "name required", MessageOf(wrapped))

	assert.Equal(t, "plain", MessageOf(errors.New("plain")))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal("query failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "query failed: connection reset", err.Error())
}
