package backend

import (
	"context"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/domain"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/pagination"
)

// --- Patrimonies ---

func (c *Client) ListPatrimonies(ctx context.Context, p pagination.Params) ([]domain.Patrimony, error) {
	return getJSON[[]domain.Patrimony](ctx, c, pathPatrimonies, p.Query())
}

func (c *Client) GetPatrimony(ctx context.Context, id string) (domain.Patrimony, error) {
	return getJSON[domain.Patrimony](ctx, c, pathPatrimonies+"/"+id, nil)
}

func (c *Client) CreatePatrimony(ctx context.Context, in domain.PatrimonyInput) (domain.Patrimony, error) {
	return postJSON[domain.Patrimony](ctx, c, pathPatrimonies, in)
}

func (c *Client) UpdatePatrimony(ctx context.Context, id string, in domain.PatrimonyInput) (domain.Patrimony, error) {
	return putJSON[domain.Patrimony](ctx, c, pathPatrimonies+"/"+id, in)
}

func (c *Client) DeletePatrimony(ctx context.Context, id string) error {
	return c.deleteJSON(ctx, pathPatrimonies+"/"+id)
}

// --- Movements ---
//
// Movements are append-only: there is no update or delete.

func (c *Client) ListMovements(ctx context.Context, p pagination.Params) ([]domain.Movement, error) {
	return getJSON[[]domain.Movement](ctx, c, pathMovements, p.Query())
}

func (c *Client) CreateMovement(ctx context.Context, in domain.MovementInput) (domain.Movement, error) {
	return postJSON[domain.Movement](ctx, c, pathMovements, in)
}

// InventorySummary returns the backend's aggregate view over assets and
// movements.
func (c *Client) InventorySummary(ctx context.Context) (domain.InventorySummary, error) {
	return getJSON[domain.InventorySummary](ctx, c, pathInventory, nil)
}
