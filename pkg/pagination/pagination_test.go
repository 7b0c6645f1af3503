package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest_Defaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/members", nil)
	p := FromRequest(req)
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
}

func TestFromRequest_ExplicitValues(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/members?page=3&per_page=50", nil)
	p := FromRequest(req)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 50, p.PerPage)
	assert.Equal(t, 100, p.Offset())
}

func TestFromRequest_InvalidValuesFallBack(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/members?page=abc&per_page=-5", nil)
	p := FromRequest(req)
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
}

func TestFromRequest_ClampsPerPage(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/members?per_page=5000", nil)
	p := FromRequest(req)
	assert.Equal(t, MaxPerPage, p.PerPage)
}

func TestQuery_Encoding(t *testing.T) {
	p := Params{Page: 2, PerPage: 10}
	q := p.Query()
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "10", q.Get("per_page"))
}
