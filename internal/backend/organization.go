package backend

import (
	"context"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/domain"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/pagination"
)

// --- Sectors ---

func (c *Client) ListSectors(ctx context.Context, p pagination.Params) ([]domain.Sector, error) {
	return getJSON[[]domain.Sector](ctx, c, pathSectors, p.Query())
}

func (c *Client) GetSector(ctx context.Context, id string) (domain.Sector, error) {
	return getJSON[domain.Sector](ctx, c, pathSectors+"/"+id, nil)
}

func (c *Client) CreateSector(ctx context.Context, in domain.SectorInput) (domain.Sector, error) {
	return postJSON[domain.Sector](ctx, c, pathSectors, in)
}

func (c *Client) UpdateSector(ctx context.Context, id string, in domain.SectorInput) (domain.Sector, error) {
	return putJSON[domain.Sector](ctx, c, pathSectors+"/"+id, in)
}

func (c *Client) DeleteSector(ctx context.Context, id string) error {
	return c.deleteJSON(ctx, pathSectors+"/"+id)
}

// --- Ministries ---

func (c *Client) ListMinistries(ctx context.Context, p pagination.Params) ([]domain.Ministry, error) {
	return getJSON[[]domain.Ministry](ctx, c, pathMinistries, p.Query())
}

func (c *Client) GetMinistry(ctx context.Context, id string) (domain.Ministry, error) {
	return getJSON[domain.Ministry](ctx, c, pathMinistries+"/"+id, nil)
}

func (c *Client) CreateMinistry(ctx context.Context, in domain.MinistryInput) (domain.Ministry, error) {
	return postJSON[domain.Ministry](ctx, c, pathMinistries, in)
}

func (c *Client) UpdateMinistry(ctx context.Context, id string, in domain.MinistryInput) (domain.Ministry, error) {
	return putJSON[domain.Ministry](ctx, c, pathMinistries+"/"+id, in)
}

func (c *Client) DeleteMinistry(ctx context.Context, id string) error {
	return c.deleteJSON(ctx, pathMinistries+"/"+id)
}
