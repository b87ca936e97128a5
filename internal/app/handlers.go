package app

import (
	"github.com/daxterlabs/daxter-backend/internal/handlers"
	"github.com/daxterlabs/daxter-backend/internal/logger"
)

type Handlers struct {
	Record    *handlers.RecordHandler
	Summary   *handlers.SummaryHandler
	Dashboard *handlers.DashboardHandler
	Health    *handlers.HealthHandler
}

func wireHandlers(log *logger.Logger, pinger handlers.Pinger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Record:    handlers.NewRecordHandler(log, serviceset.Ingestion),
		Summary:   handlers.NewSummaryHandler(log, serviceset.Summary),
		Dashboard: handlers.NewDashboardHandler(log, serviceset.Dashboard),
		Health:    handlers.NewHealthHandler(log, pinger),
	}
}
