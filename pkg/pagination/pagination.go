package pagination

import (
	"net/http"
	"net/url"
	"strconv"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// Params holds normalized pagination parameters parsed from a request.
type Params struct {
	Page    int
	PerPage int
}

// FromRequest parses `page` and `per_page` query parameters, clamping them to
// sane bounds. Absent or invalid values fall back to the defaults.
func FromRequest(r *http.Request) Params {
	p := Params{Page: DefaultPage, PerPage: DefaultPerPage}

	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.Page = n
		}
	}

	if v := r.URL.Query().Get("per_page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.PerPage = n
		}
	}

	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}

	return p
}

// Query encodes the parameters as URL query values, used when forwarding
// pagination to the church backend.
func (p Params) Query() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("per_page", strconv.Itoa(p.PerPage))
	return q
}

// Offset returns the zero-based item offset for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}
