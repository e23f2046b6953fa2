package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"filmorate/internal/domain"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// FromError maps a domain failure to its HTTP representation. Every
// handler funnels service errors through here so the taxonomy is
// applied in exactly one place.
func FromError(c *gin.Context, err error) {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		referenceErr  *domain.ReferenceNotFoundError
		conditionsErr *domain.ConditionsNotMetError
	)

	switch {
	case errors.As(err, &validationErr):
		Error(c, http.StatusBadRequest, "VALIDATION_FAILED", validationErr.Error())
	case errors.As(err, &referenceErr):
		Error(c, http.StatusNotFound, "REFERENCE_NOT_FOUND", referenceErr.Error())
	case errors.As(err, &notFoundErr):
		Error(c, http.StatusNotFound, "NOT_FOUND", notFoundErr.Error())
	case errors.Is(err, domain.ErrDuplicateEmail):
		Error(c, http.StatusConflict, "DUPLICATE_EMAIL", err.Error())
	case errors.As(err, &conditionsErr):
		Error(c, http.StatusBadRequest, "CONDITIONS_NOT_MET", conditionsErr.Error())
	default:
		Error(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}
