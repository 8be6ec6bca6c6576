package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The storefront API speaks plain HTTP semantics: success responses carry
// the payload directly, failures carry a status code and a {"message"}
// body the client surfaces to the customer.

// ErrorBody failure payload
type ErrorBody struct {
	Message string `json:"message"`
}

// OK writes a 200 with the payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Created writes a 201 with the payload.
func Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// NoContent writes a 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes a failure with a customer-facing message.
func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Message: message})
}

// BadRequest writes a 400.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized writes a 401.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound writes a 404.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Internal writes a 500 with a generic message, never leaking details.
func Internal(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "something went wrong, please try again")
}
