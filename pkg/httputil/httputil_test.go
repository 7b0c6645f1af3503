package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/errors"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/validator"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeEnvelope(t *testing.T, body string) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	return resp
}

func TestWriteJSON_SetsContentTypeAndStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSON(rr, http.StatusCreated, Response{Data: map[string]string{"id": "1"}})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestWriteError_AppError_PreservesCodeAndStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/members", nil)

	WriteError(rr, req, apperrors.Upstream(http.StatusConflict, "member already exists"), newTestLogger())

	assert.Equal(t, http.StatusConflict, rr.Code)
	resp := decodeEnvelope(t, rr.Body.String())
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UPSTREAM_ERROR", resp.Error.Code)
	assert.Equal(t, "member already exists", resp.Error.Message)
}

func TestWriteError_SessionExpiredSentinel(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)

	WriteError(rr, req, apperrors.ErrSessionExpired, newTestLogger())

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	resp := decodeEnvelope(t, rr.Body.String())
	require.NotNil(t, resp.Error)
	assert.Equal(t, "SESSION_EXPIRED", resp.Error.Code)
}

func TestWriteError_UnknownError_Returns500(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sectors", nil)

	WriteError(rr, req, errors.New("boom"), newTestLogger())

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decodeEnvelope(t, rr.Body.String())
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)
}

func TestWriteValidationError_FieldLevel(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
	}
	err := validator.Validate(form{})
	require.Error(t, err)

	rr := httptest.NewRecorder()
	WriteValidationError(rr, err)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeEnvelope(t, rr.Body.String())
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "is required", resp.Error.Fields["email"])
}

func TestDecodeJSON_ValidBody(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Jane"}`))

	var body struct {
		Name string `json:"name"`
	}
	require.NoError(t, DecodeJSON(rr, req, &body))
	assert.Equal(t, "Jane", body.Name)
}

func TestDecodeJSON_MalformedBody_ReturnsInvalidInput(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))

	var body map[string]any
	err := DecodeJSON(rr, req, &body)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}
