package backend

import (
	"context"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/domain"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/pagination"
)

// ListMembers returns the member roster page.
func (c *Client) ListMembers(ctx context.Context, p pagination.Params) ([]domain.UserProfile, error) {
	return getJSON[[]domain.UserProfile](ctx, c, pathUsers, p.Query())
}

// GetMember returns a single member by ID.
func (c *Client) GetMember(ctx context.Context, id string) (domain.UserProfile, error) {
	return getJSON[domain.UserProfile](ctx, c, pathUsers+"/"+id, nil)
}

// CreateMember registers a new member.
func (c *Client) CreateMember(ctx context.Context, in domain.MemberInput) (domain.UserProfile, error) {
	return postJSON[domain.UserProfile](ctx, c, pathUsers, in)
}

// UpdateMember replaces a member's editable fields.
func (c *Client) UpdateMember(ctx context.Context, id string, in domain.MemberInput) (domain.UserProfile, error) {
	return putJSON[domain.UserProfile](ctx, c, pathUsers+"/"+id, in)
}

// DeleteMember removes a member.
func (c *Client) DeleteMember(ctx context.Context, id string) error {
	return c.deleteJSON(ctx, pathUsers+"/"+id)
}

// ReplaceMemberSectors sets the member's sector links to exactly the given set.
func (c *Client) ReplaceMemberSectors(ctx context.Context, id string, sectorIDs []string) (domain.UserProfile, error) {
	return putJSON[domain.UserProfile](ctx, c, pathUsers+"/"+id+"/sectors", domain.MemberAssignments{IDs: sectorIDs})
}

// ReplaceMemberMinistries sets the member's ministry links to exactly the given set.
func (c *Client) ReplaceMemberMinistries(ctx context.Context, id string, ministryIDs []string) (domain.UserProfile, error) {
	return putJSON[domain.UserProfile](ctx, c, pathUsers+"/"+id+"/ministeries", domain.MemberAssignments{IDs: ministryIDs})
}

// GetProfile returns the member record behind the current session. Unlike the
// session's cached snapshot, this is a live read.
func (c *Client) GetProfile(ctx context.Context, userID string) (domain.UserProfile, error) {
	return c.GetMember(ctx, userID)
}

// UpdateProfile updates the member record behind the current session.
func (c *Client) UpdateProfile(ctx context.Context, userID string, in domain.MemberInput) (domain.UserProfile, error) {
	return c.UpdateMember(ctx, userID, in)
}
