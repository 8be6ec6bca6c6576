package public

import (
	"github.com/vruksha/storefront/internal/http/response"
	"github.com/vruksha/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	AddressID   uint     `json:"addressId"`
	IsRecurring bool     `json:"isRecurring"`
	Schedule    []string `json:"schedule"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
}

// CreateOrder POST /api/orders/create
func (h *Handler) CreateOrder(c *gin.Context) {
	userID, _ := currentUserID(c)
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid checkout payload")
		return
	}
	order, err := h.OrderService.Checkout(c.Request.Context(), userID, service.CheckoutInput{
		AddressID:   req.AddressID,
		IsRecurring: req.IsRecurring,
		Schedule:    req.Schedule,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, order)
}

// MyOrders GET /api/orders/my-orders
func (h *Handler) MyOrders(c *gin.Context) {
	userID, _ := currentUserID(c)
	orders, err := h.OrderService.MyOrders(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, orders)
}

// GetOrder GET /api/orders/:id
func (h *Handler) GetOrder(c *gin.Context) {
	userID, _ := currentUserID(c)
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid order id")
		return
	}
	order, err := h.OrderService.Get(c.Request.Context(), userID, id)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, order)
}
