package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/shopify"
)

// checkoutHandler reconciles the session's cart with the platform and hands
// the user agent off to the platform checkout page. The redirect is one-way;
// the storefront never observes checkout completion.
func checkoutHandler(carts *cart.Manager, svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)
		cc := carts.Get(c.Request.Context(), sid)

		url, err := svc.Checkout(c.Request.Context(), sid, cc)
		if err != nil {
			checkoutError(c, err)
			return
		}
		c.Redirect(http.StatusSeeOther, url)
	}
}

func checkoutError(c *gin.Context, err error) {
	var userErr *shopify.UserError
	switch {
	case errors.Is(err, checkout.ErrInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "checkout already in progress"})
	case errors.As(err, &userErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": userErr.Message})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to proceed to checkout, please try again"})
	}
}
