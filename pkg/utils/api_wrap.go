package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

// ErrorResponse is the error body of every endpoint. The miniapp SDK and the
// payment processor both expect a flat {"error": "..."} object.
type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// HandleServiceError maps service-level sentinel errors onto the HTTP
// contract. Persistence errors stay deliberately generic so storage
// internals never leak to callers.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidProduct):
		RespondError(c, http.StatusBadRequest, "Invalid product")
	case errors.Is(err, ErrInvoiceNotFound):
		RespondError(c, http.StatusNotFound, "Invoice not found")
	case errors.Is(err, ErrMissingSignature):
		RespondError(c, http.StatusUnauthorized, "Missing webhook signature")
	case errors.Is(err, ErrInvalidSignature):
		RespondError(c, http.StatusUnauthorized, "Invalid signature")
	case errors.Is(err, ErrInvalidPayload):
		RespondError(c, http.StatusBadRequest, "Invalid payload")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
