package backend

import (
	"context"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/domain"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/pagination"
)

// --- Events ---

func (c *Client) ListEvents(ctx context.Context, p pagination.Params) ([]domain.Event, error) {
	return getJSON[[]domain.Event](ctx, c, pathEvents, p.Query())
}

func (c *Client) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	return getJSON[domain.Event](ctx, c, pathEvents+"/"+id, nil)
}

func (c *Client) CreateEvent(ctx context.Context, in domain.EventInput) (domain.Event, error) {
	return postJSON[domain.Event](ctx, c, pathEvents, in)
}

func (c *Client) UpdateEvent(ctx context.Context, id string, in domain.EventInput) (domain.Event, error) {
	return putJSON[domain.Event](ctx, c, pathEvents+"/"+id, in)
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.deleteJSON(ctx, pathEvents+"/"+id)
}

// --- Service days ---

func (c *Client) ListServiceDays(ctx context.Context) ([]domain.ServiceDay, error) {
	return getJSON[[]domain.ServiceDay](ctx, c, pathServiceDays, nil)
}

func (c *Client) CreateServiceDay(ctx context.Context, in domain.ServiceDayInput) (domain.ServiceDay, error) {
	return postJSON[domain.ServiceDay](ctx, c, pathServiceDays, in)
}

func (c *Client) UpdateServiceDay(ctx context.Context, id string, in domain.ServiceDayInput) (domain.ServiceDay, error) {
	return putJSON[domain.ServiceDay](ctx, c, pathServiceDays+"/"+id, in)
}

func (c *Client) DeleteServiceDay(ctx context.Context, id string) error {
	return c.deleteJSON(ctx, pathServiceDays+"/"+id)
}

// --- Sermons ---

func (c *Client) ListSermons(ctx context.Context, p pagination.Params) ([]domain.Sermon, error) {
	return getJSON[[]domain.Sermon](ctx, c, pathSermons, p.Query())
}

func (c *Client) GetSermon(ctx context.Context, id string) (domain.Sermon, error) {
	return getJSON[domain.Sermon](ctx, c, pathSermons+"/"+id, nil)
}

func (c *Client) CreateSermon(ctx context.Context, in domain.SermonInput) (domain.Sermon, error) {
	return postJSON[domain.Sermon](ctx, c, pathSermons, in)
}

func (c *Client) UpdateSermon(ctx context.Context, id string, in domain.SermonInput) (domain.Sermon, error) {
	return putJSON[domain.Sermon](ctx, c, pathSermons+"/"+id, in)
}

func (c *Client) DeleteSermon(ctx context.Context, id string) error {
	return c.deleteJSON(ctx, pathSermons+"/"+id)
}
