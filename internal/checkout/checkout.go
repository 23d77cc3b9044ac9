package checkout

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"storefront/internal/cart"
	"storefront/internal/domain"
)

var (
	// ErrInFlight means this session already has a checkout attempt running.
	ErrInFlight = errors.New("checkout already in progress")
	// ErrMissingCheckoutURL means the platform returned a cart without a
	// checkout destination. Never silently navigate nowhere.
	ErrMissingCheckoutURL = errors.New("checkout url missing")
)

// Gateway is the slice of the platform client the reconciler needs.
type Gateway interface {
	CreateCart(ctx context.Context) (*domain.RemoteCart, error)
	AddCartLines(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.RemoteCart, error)
}

// Service turns a local cart into a platform checkout session, exactly once
// per attempt. Every attempt creates a fresh platform cart; previous cart ids
// are never reused. A failed attempt leaves the local cart untouched and may
// be retried.
type Service struct {
	gateway Gateway
	log     logrus.FieldLogger

	// clearOnSuccess empties the local cart once the checkout URL is in
	// hand. The platform client leaves the cart as-is; both behaviors are
	// defensible, so it is a config switch.
	clearOnSuccess bool

	mu       sync.Mutex
	inFlight map[string]bool
}

func New(gateway Gateway, clearOnSuccess bool, log logrus.FieldLogger) *Service {
	return &Service{
		gateway:        gateway,
		log:            log,
		clearOnSuccess: clearOnSuccess,
		inFlight:       make(map[string]bool),
	}
}

// Checkout reconciles the session's cart into a fresh platform cart and
// returns the checkout URL to hand the user agent to. An empty local cart is
// not an error: the empty platform cart's own URL is returned.
func (s *Service) Checkout(ctx context.Context, sessionID string, c *cart.Cart) (string, error) {
	if !s.begin(sessionID) {
		return "", ErrInFlight
	}
	defer s.end(sessionID)

	remote, err := s.gateway.CreateCart(ctx)
	if err != nil {
		return "", err
	}

	items := c.Items()
	if len(items) > 0 {
		lines := make([]domain.CartLineInput, 0, len(items))
		for _, item := range items {
			lines = append(lines, domain.CartLineInput{
				MerchandiseID: item.VariantID,
				Quantity:      item.Quantity,
			})
		}
		remote, err = s.gateway.AddCartLines(ctx, remote.ID, lines)
		if err != nil {
			return "", err
		}
	}

	if remote.CheckoutURL == "" {
		return "", ErrMissingCheckoutURL
	}

	s.log.WithFields(logrus.Fields{
		"session": sessionID,
		"cartId":  remote.ID,
		"lines":   len(items),
	}).Info("handing off to platform checkout")

	if s.clearOnSuccess {
		c.Clear(ctx)
	}
	return remote.CheckoutURL, nil
}

func (s *Service) begin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[sessionID] {
		return false
	}
	s.inFlight[sessionID] = true
	return true
}

func (s *Service) end(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}
