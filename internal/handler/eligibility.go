package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rentora/rentora/internal/service"
)

// EligibilityHandler handles on-demand tenant/property eligibility evaluation
type EligibilityHandler struct {
	searchService *service.SearchService
	logger        *zap.Logger
}

// NewEligibilityHandler creates a new eligibility handler
func NewEligibilityHandler(searchService *service.SearchService, logger *zap.Logger) *EligibilityHandler {
	return &EligibilityHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// Evaluate handles GET /api/v1/eligibility?tenant_id=...&property_id=...
func (h *EligibilityHandler) Evaluate(c *gin.Context) {
	tenantID := c.Query("tenant_id")
	if tenantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tenant_id es requerido"})
		return
	}

	propertyID, err := strconv.ParseInt(c.Query("property_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "property_id inválido"})
		return
	}

	callerID, callerRole := callerIdentity(c)
	verdict, err := h.searchService.Eligibility(c.Request.Context(), callerID, callerRole, tenantID, propertyID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, verdict)
}
