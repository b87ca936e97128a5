package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/daxterlabs/daxter-backend/internal/handlers"
)

type RouterConfig struct {
	RecordHandler    *handlers.RecordHandler
	SummaryHandler   *handlers.SummaryHandler
	DashboardHandler *handlers.DashboardHandler
	HealthHandler    *handlers.HealthHandler
	AllowOrigins     []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/", cfg.HealthHandler.Root)

	api := router.Group("/api")
	{
		api.GET("/health-check", cfg.HealthHandler.HealthCheck)
		api.POST("/data-ingest", cfg.RecordHandler.Ingest)
		api.POST("/ai-summary", cfg.SummaryHandler.Create)
		api.GET("/agent-data/:agentId", cfg.DashboardHandler.AgentDetail)
		api.GET("/summary", cfg.DashboardHandler.Summary)
		api.GET("/records", cfg.DashboardHandler.ListRecords)
	}

	return router
}
