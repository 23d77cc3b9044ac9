package httpserver

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// buildRouter wires routes for the storefront API.
func buildRouter(logger *logrus.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: false,
	}))

	router.GET("/healthz", healthHandler)

	api := router.Group("/api")
	api.Use(ensureSessionID())

	api.GET("/products", listProductsHandler(deps.Catalog))
	api.GET("/products/:handle", getProductHandler(deps.Catalog))
	api.GET("/products/:handle/recommendations", recommendationsHandler(deps.Catalog))
	api.GET("/collections", listCollectionsHandler(deps.Catalog))
	api.GET("/collections/:handle/products", collectionProductsHandler(deps.Catalog))

	api.GET("/cart", getCartHandler(deps.Carts))
	api.POST("/cart/items", addItemHandler(deps.Carts))
	api.PATCH("/cart/items/:variantId", updateItemHandler(deps.Carts))
	api.DELETE("/cart/items/:variantId", removeItemHandler(deps.Carts))
	api.DELETE("/cart", clearCartHandler(deps.Carts))
	api.POST("/cart/open", openCartHandler(deps.Carts))
	api.POST("/cart/close", closeCartHandler(deps.Carts))
	api.POST("/cart/toggle", toggleCartHandler(deps.Carts))

	api.POST("/checkout", checkoutHandler(deps.Carts, deps.Checkout))

	return router
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
