package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rentora/rentora/internal/repository"
	"github.com/rentora/rentora/internal/service"
)

// writeError maps a service failure onto an HTTP response. Store faults are
// logged with full detail but only a generic retryable message goes to the
// client; validation and extraction failures come back as conversational
// "please clarify / rephrase" responses.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	var (
		validationErr *service.ValidationError
		extractionErr *service.ExtractionError
		authFault     *service.AuthorizationFault
		storeFault    *repository.StoreFault
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": service.ReplyClarify,
			"field": validationErr.Field,
		})
	case errors.As(err, &extractionErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": service.ReplyRephrase})
	case errors.As(err, &authFault):
		c.JSON(http.StatusForbidden, gin.H{"error": "No autorizado"})
	case errors.As(err, &storeFault):
		logger.Error("record store failure",
			zap.String("op", storeFault.Op),
			zap.Error(storeFault.Err),
		)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": service.ReplyStoreError})
	default:
		logger.Error("unexpected request failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
	}
}
