package backend

import (
	"context"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/domain"
)

// GetSettings returns the church-wide settings document. The backend keeps a
// single document, so there is no ID in the path.
func (c *Client) GetSettings(ctx context.Context) (domain.Settings, error) {
	return getJSON[domain.Settings](ctx, c, pathSettings, nil)
}

// UpdateSettings replaces the settings document.
func (c *Client) UpdateSettings(ctx context.Context, in domain.SettingsInput) (domain.Settings, error) {
	return putJSON[domain.Settings](ctx, c, pathSettings, in)
}
