package cart

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Manager owns one Cart per browser session. A session's cart is restored
// from its storage slot the first time the session shows up and kept in
// memory for the lifetime of the process afterwards.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
	store Store
	log   logrus.FieldLogger
}

func NewManager(store Store, log logrus.FieldLogger) *Manager {
	return &Manager{
		carts: make(map[string]*Cart),
		store: store,
		log:   log,
	}
}

// slotKey names the storage slot for a session's cart.
func slotKey(sessionID string) string {
	return "cart:" + sessionID
}

// Get returns the session's cart, restoring it from storage on first use.
func (m *Manager) Get(ctx context.Context, sessionID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.carts[sessionID]; ok {
		return c
	}
	c := New(m.store, slotKey(sessionID), m.log)
	c.Restore(ctx)
	m.carts[sessionID] = c
	return c
}
