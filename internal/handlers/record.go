package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daxterlabs/daxter-backend/internal/logger"
	"github.com/daxterlabs/daxter-backend/internal/services"
	"github.com/daxterlabs/daxter-backend/internal/types"
)

type RecordHandler struct {
	log              *logger.Logger
	ingestionService services.IngestionService
}

func NewRecordHandler(log *logger.Logger, ingestionService services.IngestionService) *RecordHandler {
	return &RecordHandler{
		log:              log.With("handler", "RecordHandler"),
		ingestionService: ingestionService,
	}
}

func (h *RecordHandler) Ingest(c *gin.Context) {
	var input types.RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "invalid_body", err)
		return
	}
	record, err := h.ingestionService.Ingest(c.Request.Context(), input)
	if err != nil {
		if !services.IsValidation(err) {
			h.log.Error("Ingest failed", "agent_id", input.AgentID, "error", err)
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}
