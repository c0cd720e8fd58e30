// internal/interfaces/http/handlers/respond.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/shoponline-backend/internal/pkg/apperrors"
)

// respondError writes a service error as a status-coded response whose
// body names the failing condition.
func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), gin.H{
		"error": err.Error(),
		"kind":  string(apperrors.KindOf(err)),
	})
}

// respondBindError reports a request body that failed binding. Payload
// shape errors map to 422, matching the API contract for validation.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":   "Invalid request data",
		"details": err.Error(),
		"kind":    string(apperrors.KindValidation),
	})
}
