package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rentora/rentora/internal/service"
)

// SearchHandler handles the assistant search endpoint
type SearchHandler struct {
	searchService *service.SearchService
	logger        *zap.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService *service.SearchService, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// ChatSearchRequest is the body of one assistant search turn
type ChatSearchRequest struct {
	Message string `json:"message" binding:"required"`
}

// Search handles POST /api/v1/chat/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req ChatSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mensaje inválido"})
		return
	}

	userID, _ := callerIdentity(c)
	result, err := h.searchService.Search(c.Request.Context(), userID, req.Message)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
