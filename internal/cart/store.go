package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"storefront/internal/domain"
)

// ErrNoSnapshot is returned by a Store when the slot has never been written.
var ErrNoSnapshot = errors.New("no cart snapshot")

// Store is one durable key-value slot per cart. Implementations only move
// opaque bytes; the snapshot shape is owned by this package.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// snapshot is the persisted cart shape. The derived fields are written for
// inspectability but are recomputed from the items on every load.
type snapshot struct {
	Items       []domain.LineItem `json:"items"`
	ItemCount   int               `json:"itemCount"`
	TotalAmount decimal.Decimal   `json:"totalAmount"`
}

func saveSnapshot(ctx context.Context, store Store, key string, items []domain.LineItem, itemCount int, totalAmount decimal.Decimal) error {
	if items == nil {
		items = []domain.LineItem{}
	}
	data, err := json.Marshal(snapshot{Items: items, ItemCount: itemCount, TotalAmount: totalAmount})
	if err != nil {
		return err
	}
	return store.Save(ctx, key, data)
}

// loadSnapshot reads and parses one slot. A missing slot yields an empty item
// list with no error; anything unparseable is surfaced so the caller can log
// the corruption before falling back to the empty cart.
func loadSnapshot(ctx context.Context, store Store, key string) ([]domain.LineItem, error) {
	data, err := store.Load(ctx, key)
	if errors.Is(err, ErrNoSnapshot) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("corrupt cart snapshot: %w", err)
	}
	for _, item := range snap.Items {
		if item.VariantID == "" || item.Quantity < 1 {
			return nil, fmt.Errorf("corrupt cart snapshot: malformed line item")
		}
	}
	return snap.Items, nil
}
