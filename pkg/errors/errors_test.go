package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error_WithWrappedError(t *testing.T) {
	err := NotFound("member", "m-1")
	assert.Contains(t, err.Error(), "NOT_FOUND")
	assert.Contains(t, err.Error(), "member with id m-1 not found")
}

func TestAppError_Unwrap_MatchesSentinel(t *testing.T) {
	err := SessionExpired("jwt expired")
	assert.True(t, errors.Is(err, ErrSessionExpired))
}

func TestHTTPStatus_AppError_UsesStatusField(t *testing.T) {
	err := Upstream(http.StatusBadGateway, "backend unavailable")
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(err))
}

func TestHTTPStatus_WrappedAppError_Found(t *testing.T) {
	err := fmt.Errorf("list sectors: %w", Unauthorized("missing token"))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(err))
}

func TestHTTPStatus_Sentinels(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"conflict", ErrConflict, http.StatusConflict},
		{"invalid input", ErrInvalidInput, http.StatusBadRequest},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"session expired", ErrSessionExpired, http.StatusUnauthorized},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"service unavailable", ErrServiceUnavail, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(fmt.Errorf("wrapped: %w", tt.err)))
		})
	}
}

func TestWrap_PreservesChain(t *testing.T) {
	err := Wrap(ErrNotFound, "load service day")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "load service day")
}
