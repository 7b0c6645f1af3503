// Package backend is the single choke point for every call to the church REST
// API. It attaches the bearer token for the request's session and enforces the
// forced-logout contract: any 401 destroys that session in storage before the
// error reaches the caller.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/session"
	apperrors "github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/errors"
)

// Backend endpoint paths. "/ministeries" is the backend's own spelling.
const (
	pathLogin       = "/auth/login"
	pathUsers       = "/users"
	pathSectors     = "/sectors"
	pathMinistries  = "/ministeries"
	pathEvents      = "/events"
	pathServiceDays = "/service-days"
	pathSermons     = "/sermons"
	pathEBDStudents = "/ebd/students"
	pathPatrimonies = "/patrimonies"
	pathMovements   = "/movements"
	pathSettings    = "/settings"
	pathInventory   = "/inventory"
)

var backendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "backend_requests_total",
		Help: "Total number of requests issued to the church backend",
	},
	[]string{"method", "resource", "status"},
)

// Doer abstracts the transport so the wrapper works over the plain retrying
// client or the circuit-breaker client.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Client wraps the transport with the authentication contract. All typed
// resource methods in this package go through Client.do.
type Client struct {
	baseURL  string
	http     Doer
	sessions session.Store
	logger   *slog.Logger
}

// New creates a backend client. baseURL must not have a trailing slash.
func New(baseURL string, doer Doer, sessions session.Store, logger *slog.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     doer,
		sessions: sessions,
		logger:   logger,
	}
}

// do executes one backend call. The request interceptor reads the current
// token from the session store (keyed by the session ID in ctx) and attaches
// it; requests without a resolvable session go out unauthenticated and the
// backend decides whether to reject them.
//
// The response interceptor handles exactly one case: HTTP 401. The session is
// deleted from storage synchronously before the error is returned, so by the
// time any caller (or redirect) observes the failure, storage is already
// empty. Every other status passes through to the caller unmodified.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	sessionID, hasSession := session.IDFromContext(ctx)
	if hasSession {
		if sess, err := c.sessions.Get(ctx, sessionID); err == nil {
			req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
		}
	}

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		backendRequestsTotal.WithLabelValues(method, resource(path), "error").Inc()
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	backendRequestsTotal.WithLabelValues(method, resource(path), strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusUnauthorized {
		message := errorMessage(resp.Body)

		if hasSession {
			// Forced logout: storage is cleared before the caller ever sees
			// the error. The failed request itself is not retried.
			if delErr := c.sessions.Delete(ctx, sessionID); delErr != nil {
				c.logger.Error("failed to clear session after 401",
					slog.String("session_id", sessionID),
					slog.String("error", delErr.Error()),
				)
			} else {
				c.logger.Info("session cleared after backend 401",
					slog.String("session_id", sessionID),
					slog.String("path", path),
				)
			}
			return apperrors.SessionExpired(message)
		}
		return apperrors.Unauthorized(message)
	}

	if resp.StatusCode >= 400 {
		return parseErrorResponse(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// resource derives a bounded metrics label from the request path.
func resource(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i > 0 {
		return trimmed[:i]
	}
	return trimmed
}

// --- generic helpers shared by the typed resource methods ---

func getJSON[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var out T
	if err := c.do(ctx, http.MethodGet, path, query, nil, &out); err != nil {
		return out, err
	}
	return out, nil
}

func postJSON[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var out T
	if err := c.do(ctx, http.MethodPost, path, nil, body, &out); err != nil {
		return out, err
	}
	return out, nil
}

func putJSON[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var out T
	if err := c.do(ctx, http.MethodPut, path, nil, body, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (c *Client) deleteJSON(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
