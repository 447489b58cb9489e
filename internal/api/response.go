package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/develop-y-minami/v-spa/internal/validation"
)

// Envelope is the uniform response wrapper. Every endpoint answers with one
// of the three constructors below; there are no ad-hoc response shapes.
type Envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    any                 `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Success writes the success envelope. A 204 sends no body at all.
func Success(c *gin.Context, status int, data any) {
	if status == http.StatusNoContent {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(status, Envelope{
		Success: true,
		Message: "Request was successful",
		Data:    data,
	})
}

// Error writes the failure envelope. No data key is emitted.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
	})
}

// ValidationFailed writes the 422 envelope with the per-field messages. The
// top-level message carries the first failure in field order, which is what
// the form screens display.
func ValidationFailed(c *gin.Context, errs validation.Errors) {
	c.JSON(http.StatusUnprocessableEntity, Envelope{
		Success: false,
		Message: errs.First(),
		Errors:  errs,
	})
}
