package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/cart"
	"storefront/internal/domain"
)

type addItemRequest struct {
	VariantID string `json:"variantId" binding:"required"`
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Price     struct {
		Amount       string `json:"amount" binding:"required"`
		CurrencyCode string `json:"currencyCode" binding:"required"`
	} `json:"price" binding:"required"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
	Variant  struct {
		Title           string                  `json:"title"`
		SelectedOptions []domain.SelectedOption `json:"selectedOptions"`
	} `json:"variant"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func getCartHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cc := carts.Get(c.Request.Context(), sessionID(c))
		c.JSON(http.StatusOK, cc.State())
	}
}

func addItemHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item := domain.LineItem{
			VariantID: req.VariantID,
			ProductID: req.ProductID,
			Title:     req.Title,
			Price:     domain.Money{Amount: req.Price.Amount, CurrencyCode: req.Price.CurrencyCode},
			Image:     req.Image,
			Quantity:  req.Quantity,
			Variant: domain.VariantSnapshot{
				Title:           req.Variant.Title,
				SelectedOptions: req.Variant.SelectedOptions,
			},
		}
		cc := carts.Get(c.Request.Context(), sessionID(c))
		c.JSON(http.StatusOK, cc.AddItem(c.Request.Context(), item))
	}
}

func updateItemHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		cc := carts.Get(c.Request.Context(), sessionID(c))
		c.JSON(http.StatusOK, cc.UpdateQuantity(c.Request.Context(), c.Param("variantId"), *req.Quantity))
	}
}

func removeItemHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cc := carts.Get(c.Request.Context(), sessionID(c))
		c.JSON(http.StatusOK, cc.RemoveItem(c.Request.Context(), c.Param("variantId")))
	}
}

func clearCartHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cc := carts.Get(c.Request.Context(), sessionID(c))
		c.JSON(http.StatusOK, cc.Clear(c.Request.Context()))
	}
}

func openCartHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cc := carts.Get(c.Request.Context(), sessionID(c))
		c.JSON(http.StatusOK, cc.Open())
	}
}

func closeCartHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cc := carts.Get(c.Request.Context(), sessionID(c))
		c.JSON(http.StatusOK, cc.Close())
	}
}

func toggleCartHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		cc := carts.Get(c.Request.Context(), sessionID(c))
		c.JSON(http.StatusOK, cc.Toggle())
	}
}
