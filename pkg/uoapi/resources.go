package uoapi

import (
	"context"
	"strconv"
)

// GetEntities returns one page of the paginated entity list. The payload is
// expected to contain a pagination descriptor and an item list, but no shape
// is enforced here.
func (c *Client) GetEntities(ctx context.Context, page int) (any, error) {
	u, err := c.BuildURL(MethodEntities, nil, Params{{Key: "page", Value: strconv.Itoa(page)}})
	if err != nil {
		return nil, err
	}
	return c.Resolve(ctx, u)
}

// GetEntity returns a single entity by its UUID.
func (c *Client) GetEntity(ctx context.Context, entityID string) (any, error) {
	u, err := c.BuildURL(MethodEntities, []string{entityID}, nil)
	if err != nil {
		return nil, err
	}
	return c.Resolve(ctx, u)
}

// GetFeed returns a single feed by its UUID.
func (c *Client) GetFeed(ctx context.Context, feedID string) (any, error) {
	u, err := c.BuildURL(MethodFeed, []string{feedID}, nil)
	if err != nil {
		return nil, err
	}
	return c.Resolve(ctx, u)
}

// GetSummary returns the non-paginated summary of all entities and their
// feeds. The payload is a JSON array.
func (c *Client) GetSummary(ctx context.Context) (any, error) {
	u, err := c.BuildURL(MethodSummary, nil, nil)
	if err != nil {
		return nil, err
	}
	return c.Resolve(ctx, u)
}
