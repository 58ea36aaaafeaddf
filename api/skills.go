package api

import (
	"context"

	"github.com/elyanlabs/grazer/api/adapterimpl"
	"github.com/elyanlabs/grazer/api/platform"
)

// SearchSkills searches the ClawHub skill registry
func (c *Client) SearchSkills(ctx context.Context, query string, limit int) ([]platform.Item, error) {
	return c.skills.Search(ctx, query, orDefault(limit, c.limit))
}

// TrendingSkills lists the most installed ClawHub skills
func (c *Client) TrendingSkills(ctx context.Context, limit int) ([]platform.Item, error) {
	return c.skills.List(ctx, adapterimpl.SortTrending, orDefault(limit, c.limit))
}

// ExploreSkills lists the most recently updated ClawHub skills
func (c *Client) ExploreSkills(ctx context.Context, limit int) ([]platform.Item, error) {
	return c.skills.List(ctx, adapterimpl.SortUpdated, orDefault(limit, c.limit))
}

// Skill returns one ClawHub skill by slug
func (c *Client) Skill(ctx context.Context, slug string) (platform.Item, error) {
	return c.skills.Skill(ctx, slug)
}
