package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLivenessHandler_AlwaysUp(t *testing.T) {
	h := NewHandler()
	rr := httptest.NewRecorder()

	h.LivenessHandler()(rr, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, StatusUp, resp.Status)
}

func TestReadinessHandler_NoChecks_Up(t *testing.T) {
	h := NewHandler()
	rr := httptest.NewRecorder()

	h.ReadinessHandler()(rr, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestReadinessHandler_CriticalFailure_Returns503(t *testing.T) {
	h := NewHandler()
	h.Register("session-store", func(ctx context.Context) error {
		return errors.New("directory unwritable")
	})

	rr := httptest.NewRecorder()
	h.ReadinessHandler()(rr, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, StatusDown, resp.Status)
	assert.Equal(t, StatusDown, resp.Checks["session-store"].Status)
	assert.True(t, resp.Checks["session-store"].Critical)
}

func TestReadinessHandler_NonCriticalFailure_StaysUp(t *testing.T) {
	h := NewHandler()
	h.RegisterNonCritical("church-backend", func(ctx context.Context) error {
		return errors.New("connection refused")
	})

	rr := httptest.NewRecorder()
	h.ReadinessHandler()(rr, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, StatusUp, resp.Status)
	assert.Equal(t, StatusDown, resp.Checks["church-backend"].Status)
	assert.False(t, resp.Checks["church-backend"].Critical)
}
