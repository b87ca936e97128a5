package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daxterlabs/daxter-backend/internal/logger"
	"github.com/daxterlabs/daxter-backend/internal/services"
	"github.com/daxterlabs/daxter-backend/internal/types"
)

type SummaryHandler struct {
	log            *logger.Logger
	summaryService services.SummaryService
}

func NewSummaryHandler(log *logger.Logger, summaryService services.SummaryService) *SummaryHandler {
	return &SummaryHandler{
		log:            log.With("handler", "SummaryHandler"),
		summaryService: summaryService,
	}
}

func (h *SummaryHandler) Create(c *gin.Context) {
	var req types.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "invalid_body", err)
		return
	}
	summary, err := h.summaryService.Create(c.Request.Context(), req)
	if err != nil {
		if !services.IsValidation(err) {
			h.log.Error("Summary creation failed", "agent_id", req.AgentID, "error", err)
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
