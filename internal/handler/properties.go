package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rentora/rentora/internal/service"
)

// PropertyHandler handles property listing reads
type PropertyHandler struct {
	searchService *service.SearchService
	logger        *zap.Logger
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(searchService *service.SearchService, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// List handles GET /api/v1/properties. Landlords see their own listings in
// any status; tenants see active listings.
func (h *PropertyHandler) List(c *gin.Context) {
	callerID, callerRole := callerIdentity(c)
	properties, err := h.searchService.ListProperties(c.Request.Context(), callerID, callerRole)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

// Get handles GET /api/v1/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de propiedad inválido"})
		return
	}

	property, err := h.searchService.GetProperty(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Propiedad no encontrada"})
		return
	}

	c.JSON(http.StatusOK, property)
}
