package shopify

import (
	"context"

	"storefront/internal/domain"
)

// ProductListOptions mirror the products query arguments. SortKey defaults to
// CREATED_AT, matching the platform's newest-first storefront listing.
type ProductListOptions struct {
	First   int
	SortKey string
	Reverse bool
	Query   string
}

// Products fetches up to opts.First products.
func (c *Client) Products(ctx context.Context, opts ProductListOptions) ([]domain.Product, error) {
	if opts.First <= 0 {
		opts.First = 20
	}
	if opts.SortKey == "" {
		opts.SortKey = "CREATED_AT"
	}
	vars := map[string]interface{}{
		"first":   opts.First,
		"sortKey": opts.SortKey,
		"reverse": opts.Reverse,
	}
	if opts.Query != "" {
		vars["query"] = opts.Query
	}

	var resp struct {
		Products connection[wireProduct] `json:"products"`
	}
	if err := c.do(ctx, productsQuery, vars, &resp); err != nil {
		return nil, err
	}
	return flattenProducts(resp.Products), nil
}

// Product fetches a single product by its handle. Returns domain.ErrNotFound
// when the handle does not exist.
func (c *Client) Product(ctx context.Context, handle string) (*domain.Product, error) {
	var resp struct {
		Product *wireProduct `json:"product"`
	}
	if err := c.do(ctx, productQuery, map[string]interface{}{"handle": handle}, &resp); err != nil {
		return nil, err
	}
	if resp.Product == nil {
		return nil, domain.ErrNotFound
	}
	p := resp.Product.toDomain()
	return &p, nil
}

// ProductRecommendations fetches related products. It degrades to an empty
// list on any error so a broken recommendation widget never breaks the page.
func (c *Client) ProductRecommendations(ctx context.Context, productID string) []domain.Product {
	var resp struct {
		ProductRecommendations []wireProduct `json:"productRecommendations"`
	}
	if err := c.do(ctx, productRecommendationsQuery, map[string]interface{}{"productId": productID}, &resp); err != nil {
		c.log.WithError(err).Warn("fetching product recommendations failed")
		return []domain.Product{}
	}
	out := make([]domain.Product, 0, len(resp.ProductRecommendations))
	for _, p := range resp.ProductRecommendations {
		out = append(out, p.toDomain())
	}
	return out
}
