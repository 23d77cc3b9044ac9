package shopify

import (
	"context"
	"errors"

	"storefront/internal/domain"
)

type cartPayload struct {
	Cart       *wireCart       `json:"cart"`
	UserErrors []wireUserError `json:"userErrors"`
}

// mutatedCart converts a mutation's cart payload, rejecting the malformed
// case where the platform reports neither a cart nor user errors.
func mutatedCart(c *wireCart) (*domain.RemoteCart, error) {
	if c == nil {
		return nil, &TransportError{Err: errors.New("mutation returned no cart")}
	}
	return c.toDomain(), nil
}

// CreateCart creates a fresh, empty platform cart.
func (c *Client) CreateCart(ctx context.Context) (*domain.RemoteCart, error) {
	var resp struct {
		CartCreate cartPayload `json:"cartCreate"`
	}
	if err := c.do(ctx, createCartMutation, nil, &resp); err != nil {
		return nil, err
	}
	if err := userError(resp.CartCreate.UserErrors); err != nil {
		return nil, err
	}
	return mutatedCart(resp.CartCreate.Cart)
}

// AddCartLines adds lines to an existing platform cart and returns the
// updated cart.
func (c *Client) AddCartLines(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.RemoteCart, error) {
	var resp struct {
		CartLinesAdd cartPayload `json:"cartLinesAdd"`
	}
	vars := map[string]interface{}{"cartId": cartID, "lines": lines}
	if err := c.do(ctx, addCartLinesMutation, vars, &resp); err != nil {
		return nil, err
	}
	if err := userError(resp.CartLinesAdd.UserErrors); err != nil {
		return nil, err
	}
	return mutatedCart(resp.CartLinesAdd.Cart)
}

// CartLineUpdateInput identifies an existing platform cart line and its new
// quantity.
type CartLineUpdateInput struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// UpdateCartLines changes quantities of existing platform cart lines.
func (c *Client) UpdateCartLines(ctx context.Context, cartID string, lines []CartLineUpdateInput) (*domain.RemoteCart, error) {
	var resp struct {
		CartLinesUpdate cartPayload `json:"cartLinesUpdate"`
	}
	vars := map[string]interface{}{"cartId": cartID, "lines": lines}
	if err := c.do(ctx, updateCartLinesMutation, vars, &resp); err != nil {
		return nil, err
	}
	if err := userError(resp.CartLinesUpdate.UserErrors); err != nil {
		return nil, err
	}
	return mutatedCart(resp.CartLinesUpdate.Cart)
}

// RemoveCartLines removes lines from a platform cart by line id.
func (c *Client) RemoveCartLines(ctx context.Context, cartID string, lineIDs []string) (*domain.RemoteCart, error) {
	var resp struct {
		CartLinesRemove cartPayload `json:"cartLinesRemove"`
	}
	vars := map[string]interface{}{"cartId": cartID, "lineIds": lineIDs}
	if err := c.do(ctx, removeCartLinesMutation, vars, &resp); err != nil {
		return nil, err
	}
	if err := userError(resp.CartLinesRemove.UserErrors); err != nil {
		return nil, err
	}
	return mutatedCart(resp.CartLinesRemove.Cart)
}

// Cart fetches a platform cart by id. Returns domain.ErrNotFound for an
// unknown or expired cart id.
func (c *Client) Cart(ctx context.Context, cartID string) (*domain.RemoteCart, error) {
	var resp struct {
		Cart *wireCart `json:"cart"`
	}
	if err := c.do(ctx, cartQuery, map[string]interface{}{"cartId": cartID}, &resp); err != nil {
		return nil, err
	}
	if resp.Cart == nil {
		return nil, domain.ErrNotFound
	}
	return resp.Cart.toDomain(), nil
}
