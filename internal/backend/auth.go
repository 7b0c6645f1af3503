package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/domain"
)

// loginRequest is the backend's login body. The password field is "senha" on
// the wire; that is the backend's contract, not a typo.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// LoginResult is the backend's successful login response.
type LoginResult struct {
	AccessToken string              `json:"accessToken"`
	User        *domain.UserProfile `json:"user"`
}

// Login exchanges credentials for an access token and a user snapshot. The
// call goes out unauthenticated; a rejection propagates the backend's message
// untouched and leaves any existing session state alone.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var out LoginResult
	err := c.do(ctx, http.MethodPost, pathLogin, nil, loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return LoginResult{}, err
	}
	if out.AccessToken == "" || out.User == nil {
		return LoginResult{}, fmt.Errorf("backend login response missing token or user")
	}
	return out, nil
}
