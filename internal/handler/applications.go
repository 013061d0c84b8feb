package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rentora/rentora/internal/model"
	"github.com/rentora/rentora/internal/service"
)

// ApplicationHandler handles the application review workflow
type ApplicationHandler struct {
	applicationService *service.ApplicationService
	logger             *zap.Logger
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationService *service.ApplicationService, logger *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
		logger:             logger,
	}
}

// UpdateStatusRequest is the body for an application status change
type UpdateStatusRequest struct {
	ApplicationID int64  `json:"application_id" binding:"required"`
	Status        string `json:"status" binding:"required"`
}

// UpdateStatus handles POST /api/v1/applications/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Campos requeridos: application_id, status"})
		return
	}

	callerID, callerRole := callerIdentity(c)
	application, err := h.applicationService.UpdateStatus(
		c.Request.Context(),
		callerID,
		callerRole,
		req.ApplicationID,
		model.ApplicationStatus(req.Status),
	)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "application": application})
}

// List handles GET /api/v1/applications, returning the caller's own
// applications.
func (h *ApplicationHandler) List(c *gin.Context) {
	callerID, callerRole := callerIdentity(c)
	applications, err := h.applicationService.ListForTenant(c.Request.Context(), callerID, callerRole)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications})
}
