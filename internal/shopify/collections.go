package shopify

import (
	"context"

	"storefront/internal/domain"
)

// Collections fetches up to first collections.
func (c *Client) Collections(ctx context.Context, first int) ([]domain.Collection, error) {
	if first <= 0 {
		first = 10
	}
	var resp struct {
		Collections connection[wireCollection] `json:"collections"`
	}
	if err := c.do(ctx, collectionsQuery, map[string]interface{}{"first": first}, &resp); err != nil {
		return nil, err
	}
	out := make([]domain.Collection, 0, len(resp.Collections.Edges))
	for _, col := range resp.Collections.nodes() {
		out = append(out, domain.Collection{
			ID:          col.ID,
			Title:       col.Title,
			Handle:      col.Handle,
			Description: col.Description,
			Image:       col.Image,
		})
	}
	return out, nil
}

// CollectionProductsOptions mirror the collection products query arguments.
type CollectionProductsOptions struct {
	Handle  string
	First   int
	SortKey string
	Reverse bool
}

// CollectionProducts fetches products belonging to a collection. An unknown
// collection handle yields an empty list, not an error.
func (c *Client) CollectionProducts(ctx context.Context, opts CollectionProductsOptions) ([]domain.Product, error) {
	if opts.First <= 0 {
		opts.First = 20
	}
	if opts.SortKey == "" {
		opts.SortKey = "COLLECTION_DEFAULT"
	}
	var resp struct {
		Collection *struct {
			Products connection[wireProduct] `json:"products"`
		} `json:"collection"`
	}
	vars := map[string]interface{}{
		"handle":  opts.Handle,
		"first":   opts.First,
		"sortKey": opts.SortKey,
		"reverse": opts.Reverse,
	}
	if err := c.do(ctx, collectionProductsQuery, vars, &resp); err != nil {
		return nil, err
	}
	if resp.Collection == nil {
		return []domain.Product{}, nil
	}
	return flattenProducts(resp.Collection.Products), nil
}
