package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rentora/rentora/internal/model"
	"github.com/rentora/rentora/internal/service"
)

// ProfileHandler handles tenant self-service profile updates
type ProfileHandler struct {
	profileService *service.ProfileService
	logger         *zap.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// UpdateProfileRequest is the body for a partial profile update. Absent fields
// stay unchanged.
type UpdateProfileRequest struct {
	FullName       *string                  `json:"full_name"`
	Income         *float64                 `json:"income"`
	Score          *int                     `json:"score"`
	EmploymentType *string                  `json:"employment_type"`
	Preferences    *model.TenantPreferences `json:"preferences"`
}

// Update handles PUT /api/v1/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de solicitud inválido"})
		return
	}

	update := service.ProfileUpdate{
		FullName:    req.FullName,
		Income:      req.Income,
		Score:       req.Score,
		Preferences: req.Preferences,
	}
	if req.EmploymentType != nil {
		employment := model.EmploymentType(*req.EmploymentType)
		update.EmploymentType = &employment
	}

	callerID, callerRole := callerIdentity(c)
	profile, err := h.profileService.UpdateOwnProfile(c.Request.Context(), callerID, callerRole, update)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
