// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/shoponline-backend/internal/domain/cart"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// AddToCart puts quantity units of a product into the user's cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req cart.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.cartService.Add(req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateCart adjusts the cart by product id: positive quantities merge,
// negative quantities remove the line
func (h *CartHandler) UpdateCart(c *gin.Context) {
	var req cart.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.cartService.UpdateByProduct(req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ViewCart returns the cart with product-annotated items
func (h *CartHandler) ViewCart(c *gin.Context) {
	userID, ok := parseIDQuery(c, "user_id")
	if !ok {
		return
	}

	resp, err := h.cartService.View(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateCartItem overwrites the absolute quantity of a cart item
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "item_id")
	if !ok {
		return
	}
	userID, ok := parseIDQuery(c, "user_id")
	if !ok {
		return
	}

	var req cart.QuantityUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.cartService.UpdateItem(itemID, userID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// IncrementCartItem raises a cart item's quantity by one
func (h *CartHandler) IncrementCartItem(c *gin.Context) {
	var req cart.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.cartService.Increment(req.ItemID, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DecrementCartItem lowers a cart item's quantity by one, flooring at one
func (h *CartHandler) DecrementCartItem(c *gin.Context) {
	var req cart.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.cartService.Decrement(req.ItemID, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RemoveCartItem deletes a line from the cart
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	itemID, ok := parseIDQuery(c, "item_id")
	if !ok {
		return
	}
	userID, ok := parseIDQuery(c, "user_id")
	if !ok {
		return
	}

	resp, err := h.cartService.Remove(itemID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ResetCart empties the user's cart
func (h *CartHandler) ResetCart(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}

	resp, err := h.cartService.Reset(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// parseIDQuery parses a numeric query parameter, writing a 400 response on
// failure.
func parseIDQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter '" + name + "' is required",
		})
		return 0, false
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name,
		})
		return 0, false
	}
	return uint(id), true
}
