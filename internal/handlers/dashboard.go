package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daxterlabs/daxter-backend/internal/logger"
	"github.com/daxterlabs/daxter-backend/internal/services"
	"github.com/daxterlabs/daxter-backend/internal/types"
)

type DashboardHandler struct {
	log              *logger.Logger
	dashboardService services.DashboardService
}

func NewDashboardHandler(log *logger.Logger, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		log:              log.With("handler", "DashboardHandler"),
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.ComputeSummary(c.Request.Context())
	if err != nil {
		h.log.Error("Dashboard summary failed", "error", err)
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *DashboardHandler) AgentDetail(c *gin.Context) {
	agentID := c.Param("agentId")
	detail, err := h.dashboardService.AgentDetail(c.Request.Context(), agentID)
	if err != nil {
		if !services.IsNotFound(err) {
			h.log.Error("Agent detail failed", "agent_id", agentID, "error", err)
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *DashboardHandler) ListRecords(c *gin.Context) {
	filter, err := parseRecordFilter(c)
	if err != nil {
		RespondError(c, http.StatusUnprocessableEntity, "invalid_query", err)
		return
	}
	records, err := h.dashboardService.ListRecords(c.Request.Context(), filter)
	if err != nil {
		if !services.IsValidation(err) {
			h.log.Error("Record listing failed", "error", err)
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

func parseRecordFilter(c *gin.Context) (types.RecordFilter, error) {
	var filter types.RecordFilter
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return filter, err
		}
		filter.Offset = offset
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return filter, err
		}
		filter.Limit = limit
	}
	if raw := c.Query("from"); raw != "" {
		from, err := parseQueryTime(raw)
		if err != nil {
			return filter, err
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := parseQueryTime(raw)
		if err != nil {
			return filter, err
		}
		filter.To = &to
	}
	filter.Status = types.ComplianceStatus(c.Query("status"))
	return filter, nil
}

// parseQueryTime accepts RFC3339 timestamps or plain dates.
func parseQueryTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
