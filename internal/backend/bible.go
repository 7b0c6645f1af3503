package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	apperrors "github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/errors"
)

// BibleChapter is one chapter as returned by the scripture API, passed through
// to the public site's reader page.
type BibleChapter struct {
	Version  string       `json:"version"`
	Book     string       `json:"book"`
	Chapter  int          `json:"chapter"`
	Verses   []BibleVerse `json:"verses"`
	Chapters int          `json:"chapters,omitempty"`
}

// BibleVerse is a single numbered verse.
type BibleVerse struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// BibleClient reads scripture from a public, unauthenticated API. It shares
// the transport with the main client but never touches sessions: a 401 from
// the scripture API must not log anyone out.
type BibleClient struct {
	baseURL string
	http    Doer
}

// NewBibleClient creates a scripture client for the given API base URL.
func NewBibleClient(baseURL string, doer Doer) *BibleClient {
	return &BibleClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
	}
}

// Chapter fetches one chapter of the given translation.
func (b *BibleClient) Chapter(ctx context.Context, version, book string, chapter int) (BibleChapter, error) {
	var out BibleChapter

	path := fmt.Sprintf("/verses/%s/%s/%d", url.PathEscape(version), url.PathEscape(book), chapter)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+path, nil)
	if err != nil {
		return out, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := b.http.Do(ctx, req)
	if err != nil {
		return out, fmt.Errorf("fetch chapter: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return out, apperrors.NotFound("chapter", fmt.Sprintf("%s/%s/%d", version, book, chapter))
	case resp.StatusCode >= 400:
		return out, apperrors.Upstream(resp.StatusCode, "scripture API error")
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode chapter: %w", err)
	}
	return out, nil
}
