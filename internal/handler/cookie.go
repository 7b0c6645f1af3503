package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/errors"
)

// CookieName is the console's session cookie.
const CookieName = "ccs_session"

// CookieCodec signs and verifies the session cookie. The cookie carries only
// the session ID; the token and user snapshot stay server-side in the session
// store. Signing stops a visitor from forging an arbitrary session ID.
type CookieCodec struct {
	secret []byte
	secure bool
	maxAge time.Duration
}

// NewCookieCodec creates a codec. secure controls the cookie's Secure flag and
// must be true outside local development.
func NewCookieCodec(secret string, secure bool, maxAge time.Duration) *CookieCodec {
	return &CookieCodec{secret: []byte(secret), secure: secure, maxAge: maxAge}
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Issue writes a signed session cookie for the given session ID.
func (c *CookieCodec) Issue(w http.ResponseWriter, sessionID string) error {
	now := time.Now()
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.maxAge)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return fmt.Errorf("sign session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(c.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie.
func (c *CookieCodec) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionID extracts and verifies the session ID from the request's cookie.
// Any defect (missing cookie, bad signature, expired, wrong method) comes back
// as ErrUnauthorized; callers treat all of them as "not signed in".
func (c *CookieCodec) SessionID(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", apperrors.Unauthorized("not signed in")
	}

	var claims sessionClaims
	token, err := jwt.ParseWithClaims(cookie.Value, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid || claims.SessionID == "" {
		return "", apperrors.Unauthorized("invalid session cookie")
	}
	return claims.SessionID, nil
}
