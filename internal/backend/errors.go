package backend

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/errors"
)

// backendError mirrors the church backend's error body. Only the message field
// is contractual; it is surfaced to the user unmodified.
type backendError struct {
	Message string `json:"message"`
}

// errorMessage extracts the backend's message from an error body, falling back
// to a generic string if the body is empty or unstructured.
func errorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 1<<20))
	if err != nil || len(data) == 0 {
		return "request rejected by backend"
	}

	var be backendError
	if json.Unmarshal(data, &be) == nil && be.Message != "" {
		return be.Message
	}
	return string(data)
}

// parseErrorResponse converts a non-401 error response into an AppError that
// preserves the backend's status code and message, so pages can show exactly
// what the backend said. 401 is handled separately by the client interceptor.
func parseErrorResponse(resp *http.Response) error {
	message := errorMessage(resp.Body)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return &apperrors.AppError{
			Code:    "NOT_FOUND",
			Message: message,
			Status:  http.StatusNotFound,
			Err:     apperrors.ErrNotFound,
		}
	case http.StatusBadRequest:
		return apperrors.InvalidInput(message)
	case http.StatusConflict:
		return apperrors.Conflict(message)
	case http.StatusForbidden:
		return apperrors.Forbidden(message)
	case http.StatusServiceUnavailable:
		return &apperrors.AppError{
			Code:    "SERVICE_UNAVAILABLE",
			Message: message,
			Status:  http.StatusServiceUnavailable,
			Err:     apperrors.ErrServiceUnavail,
		}
	default:
		if resp.StatusCode >= 500 {
			return fmt.Errorf("backend error %d: %s", resp.StatusCode, message)
		}
		return apperrors.Upstream(resp.StatusCode, message)
	}
}
