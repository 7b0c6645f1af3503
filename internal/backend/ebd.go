package backend

import (
	"context"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/domain"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/pagination"
)

func (c *Client) ListEBDStudents(ctx context.Context, p pagination.Params) ([]domain.EBDStudent, error) {
	return getJSON[[]domain.EBDStudent](ctx, c, pathEBDStudents, p.Query())
}

func (c *Client) GetEBDStudent(ctx context.Context, id string) (domain.EBDStudent, error) {
	return getJSON[domain.EBDStudent](ctx, c, pathEBDStudents+"/"+id, nil)
}

func (c *Client) CreateEBDStudent(ctx context.Context, in domain.EBDStudentInput) (domain.EBDStudent, error) {
	return postJSON[domain.EBDStudent](ctx, c, pathEBDStudents, in)
}

func (c *Client) UpdateEBDStudent(ctx context.Context, id string, in domain.EBDStudentInput) (domain.EBDStudent, error) {
	return putJSON[domain.EBDStudent](ctx, c, pathEBDStudents+"/"+id, in)
}

func (c *Client) DeleteEBDStudent(ctx context.Context, id string) error {
	return c.deleteJSON(ctx, pathEBDStudents+"/"+id)
}
