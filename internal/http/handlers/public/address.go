package public

import (
	"github.com/vruksha/storefront/internal/http/response"
	"github.com/vruksha/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

type addressRequest struct {
	Line      string `json:"address" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Pincode   string `json:"pincode" binding:"required"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

func (r addressRequest) toInput() service.AddressInput {
	return service.AddressInput{
		Line:      r.Line,
		City:      r.City,
		State:     r.State,
		Pincode:   r.Pincode,
		Country:   r.Country,
		IsDefault: r.IsDefault,
	}
}

// ListAddresses GET /api/auth/address
// The list keeps its {"addresses": [...]} wrapper; existing clients bind
// to that key.
func (h *Handler) ListAddresses(c *gin.Context) {
	userID, _ := currentUserID(c)
	addresses, err := h.AddressService.List(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, gin.H{"addresses": addresses})
}

// CreateAddress POST /api/auth/address
func (h *Handler) CreateAddress(c *gin.Context) {
	userID, _ := currentUserID(c)
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "address, city, state and pincode are required")
		return
	}
	address, err := h.AddressService.Create(c.Request.Context(), userID, req.toInput())
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, address)
}

// UpdateAddress PUT /api/auth/address/:id
func (h *Handler) UpdateAddress(c *gin.Context) {
	userID, _ := currentUserID(c)
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid address id")
		return
	}
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "address, city, state and pincode are required")
		return
	}
	address, err := h.AddressService.Update(c.Request.Context(), userID, id, req.toInput())
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, address)
}

// DeleteAddress DELETE /api/auth/address/:id
func (h *Handler) DeleteAddress(c *gin.Context) {
	userID, _ := currentUserID(c)
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid address id")
		return
	}
	if err := h.AddressService.Delete(c.Request.Context(), userID, id); err != nil {
		fail(c, err)
		return
	}
	response.OK(c, gin.H{"message": "address deleted"})
}
