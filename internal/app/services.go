package app

import (
	"github.com/daxterlabs/daxter-backend/internal/cache"
	"github.com/daxterlabs/daxter-backend/internal/events"
	"github.com/daxterlabs/daxter-backend/internal/logger"
	"github.com/daxterlabs/daxter-backend/internal/services"
)

type Services struct {
	WorkflowTrigger services.WorkflowTrigger
	Summarizer      services.Summarizer
	Ingestion       services.IngestionService
	Summary         services.SummaryService
	Dashboard       services.DashboardService
}

func wireServices(log *logger.Logger, cfg Config, reposet Repos, summaryCache *cache.SummaryCache, emitter events.Emitter) Services {
	log.Info("Wiring services...")
	trigger := services.NewWorkflowTrigger(log)
	summarizer := services.NewSimulatedSummarizer(log, cfg.SummarizerMinDelay, cfg.SummarizerMaxDelay)
	return Services{
		WorkflowTrigger: trigger,
		Summarizer:      summarizer,
		Ingestion:       services.NewIngestionService(log, reposet.Record, trigger, emitter, summaryCache),
		Summary:         services.NewSummaryService(log, reposet.Summary, reposet.Record, summarizer, emitter),
		Dashboard:       services.NewDashboardService(log, reposet.Record, reposet.Summary, summaryCache, emitter),
	}
}
