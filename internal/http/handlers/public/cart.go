package public

import (
	"github.com/vruksha/storefront/internal/http/response"
	"github.com/vruksha/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	// VariationID selects a pack size by stable ID; variationIndex is the
	// positional form older clients still send.
	VariationID    *uint `json:"variationId"`
	VariationIndex *int  `json:"variationIndex"`
	Quantity       int   `json:"quantity"`
}

type updateCartRequest struct {
	ItemID   uint `json:"itemId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

// GetCart GET /api/cart
func (h *Handler) GetCart(c *gin.Context) {
	userID, _ := currentUserID(c)
	view, err := h.CartService.View(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, view)
}

// AddToCart POST /api/cart/add
func (h *Handler) AddToCart(c *gin.Context) {
	userID, _ := currentUserID(c)
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "productId is required")
		return
	}
	item, err := h.CartService.Add(c.Request.Context(), userID, service.AddToCartInput{
		ProductID:      req.ProductID,
		VariationID:    req.VariationID,
		VariationIndex: req.VariationIndex,
		Quantity:       req.Quantity,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, item)
}

// UpdateCartItem PUT /api/cart/update
func (h *Handler) UpdateCartItem(c *gin.Context) {
	userID, _ := currentUserID(c)
	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "itemId and quantity are required")
		return
	}
	item, err := h.CartService.UpdateQuantity(c.Request.Context(), userID, req.ItemID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, item)
}

// RemoveCartItem DELETE /api/cart/item/:id
func (h *Handler) RemoveCartItem(c *gin.Context) {
	userID, _ := currentUserID(c)
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid cart item id")
		return
	}
	if err := h.CartService.Remove(c.Request.Context(), userID, id); err != nil {
		fail(c, err)
		return
	}
	response.OK(c, gin.H{"message": "item removed"})
}
