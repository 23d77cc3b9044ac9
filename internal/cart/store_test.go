package cart

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := New(store, "cart:s1", testLogger())
	c.AddItem(ctx, item("A", "10.00", 1))
	c.AddItem(ctx, item("B", "5.50", 2))
	c.Open()
	expected := c.State()

	restored := New(store, "cart:s1", testLogger())
	restored.Restore(ctx)
	got := restored.State()

	if !reflect.DeepEqual(got.Items, expected.Items) {
		t.Fatalf("items did not round-trip:\n%+v\n%+v", got.Items, expected.Items)
	}
	if got.ItemCount != expected.ItemCount || !got.TotalAmount.Equal(expected.TotalAmount) {
		t.Fatalf("derived fields not recomputed: %+v", got)
	}
	if got.IsOpen {
		t.Fatalf("drawer visibility must not survive a restore")
	}
}

func TestRestoreMissingSlotYieldsEmptyCart(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := New(store, "cart:absent", testLogger())
	c.Restore(context.Background())
	state := c.State()
	if len(state.Items) != 0 || state.ItemCount != 0 || !state.TotalAmount.IsZero() {
		t.Fatalf("expected empty cart, got %+v", state)
	}
}

func TestRestoreCorruptSlotFallsBackToEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for name, payload := range map[string]string{
		"not json":     `{{{`,
		"wrong shape":  `{"items": [{"variantId": "", "quantity": 0}]}`,
		"negative qty": `{"items": [{"variantId": "A", "quantity": -2}]}`,
	} {
		if err := os.WriteFile(filepath.Join(dir, "cart_s1.json"), []byte(payload), 0o644); err != nil {
			t.Fatalf("%s: write fixture: %v", name, err)
		}
		c := New(store, "cart:s1", testLogger())
		c.Restore(context.Background())
		if state := c.State(); len(state.Items) != 0 || state.ItemCount != 0 {
			t.Fatalf("%s: expected fallback to empty cart, got %+v", name, state)
		}
	}
}

// Persisted derived fields are never trusted; a hand-edited slot self-heals.
func TestRestoreRecomputesDerivedFields(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payload := `{
	  "items": [{"variantId": "A", "productId": "p", "title": "T",
	    "price": {"amount": "10.00", "currencyCode": "USD"},
	    "quantity": 2, "variant": {"title": "", "selectedOptions": []}}],
	  "itemCount": 99, "totalAmount": 1234.5
	}`
	if err := os.WriteFile(filepath.Join(dir, "cart_s1.json"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c := New(store, "cart:s1", testLogger())
	c.Restore(context.Background())
	state := c.State()
	if state.ItemCount != 2 {
		t.Fatalf("expected recomputed count 2, got %d", state.ItemCount)
	}
	if !state.TotalAmount.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("expected recomputed total 20.00, got %s", state.TotalAmount)
	}
}

func TestManagerRestoresOncePerSession(t *testing.T) {
	ctx := context.Background()
	store := newRecordingStore()

	m := NewManager(store, testLogger())
	c := m.Get(ctx, "s1")
	c.AddItem(ctx, item("A", "10.00", 1))

	if got := m.Get(ctx, "s1"); got != c {
		t.Fatalf("expected the same cart instance per session")
	}

	// A fresh manager (new process) restores from the same slot.
	m2 := NewManager(store, testLogger())
	restored := m2.Get(ctx, "s1")
	if state := restored.State(); state.ItemCount != 1 {
		t.Fatalf("expected restored cart, got %+v", state)
	}

	other := m2.Get(ctx, "s2")
	if state := other.State(); state.ItemCount != 0 {
		t.Fatalf("sessions must not share carts: %+v", state)
	}
}
