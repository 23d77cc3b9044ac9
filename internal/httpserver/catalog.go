package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	"storefront/internal/shopify"
)

// Catalog is the slice of the platform gateway the catalog views need. The
// views are pure fetch-and-render: no state of their own.
type Catalog interface {
	Products(ctx context.Context, opts shopify.ProductListOptions) ([]domain.Product, error)
	Product(ctx context.Context, handle string) (*domain.Product, error)
	ProductRecommendations(ctx context.Context, productID string) []domain.Product
	Collections(ctx context.Context, first int) ([]domain.Collection, error)
	CollectionProducts(ctx context.Context, opts shopify.CollectionProductsOptions) ([]domain.Product, error)
}

func listProductsHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := shopify.ProductListOptions{
			First:   intQuery(c, "first", 20),
			SortKey: c.Query("sort"),
			Reverse: c.Query("reverse") == "true",
			Query:   c.Query("q"),
		}
		products, err := catalog.Products(c.Request.Context(), opts)
		if err != nil {
			gatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func getProductHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := catalog.Product(c.Request.Context(), c.Param("handle"))
		if err != nil {
			gatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}

func recommendationsHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := catalog.Product(c.Request.Context(), c.Param("handle"))
		if err != nil {
			gatewayError(c, err)
			return
		}
		recs := catalog.ProductRecommendations(c.Request.Context(), product.ID)
		c.JSON(http.StatusOK, gin.H{"products": recs})
	}
}

func listCollectionsHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		collections, err := catalog.Collections(c.Request.Context(), intQuery(c, "first", 10))
		if err != nil {
			gatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"collections": collections})
	}
}

func collectionProductsHandler(catalog Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := shopify.CollectionProductsOptions{
			Handle:  c.Param("handle"),
			First:   intQuery(c, "first", 20),
			SortKey: c.Query("sort"),
			Reverse: c.Query("reverse") == "true",
		}
		products, err := catalog.CollectionProducts(c.Request.Context(), opts)
		if err != nil {
			gatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
	}
}

func intQuery(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// gatewayError maps platform failures onto the view's error states: unknown
// entities are 404s, everything reaching for the platform and failing is a
// 502 the frontend renders as an error banner.
func gatewayError(c *gin.Context, err error) {
	var userErr *shopify.UserError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &userErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": userErr.Message})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "storefront backend unavailable"})
	}
}
