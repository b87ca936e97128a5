package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/daxterlabs/daxter-backend/internal/cache"
	"github.com/daxterlabs/daxter-backend/internal/db"
	"github.com/daxterlabs/daxter-backend/internal/events"
	"github.com/daxterlabs/daxter-backend/internal/logger"
	"github.com/daxterlabs/daxter-backend/internal/seed"
	"github.com/daxterlabs/daxter-backend/internal/server"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()

	summaryCache := cache.NewSummaryCache(cache.NewRedisClient(log), cfg.SummaryCacheTTL, log)

	if cfg.SeedOnStart {
		seedStore(context.Background(), theDB, log, cfg, summaryCache)
	}

	emitter := events.NewLogEmitter(log)

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(log, cfg, reposet, summaryCache, emitter)
	handlerset := wireHandlers(log, pg, serviceset)

	router := server.NewRouter(server.RouterConfig{
		RecordHandler:    handlerset.Record,
		SummaryHandler:   handlerset.Summary,
		DashboardHandler: handlerset.Dashboard,
		HealthHandler:    handlerset.Health,
		AllowOrigins:     cfg.AllowOrigins,
	})

	return &App{
		Log:      log,
		DB:       theDB,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
	}, nil
}

// seedStore populates an empty store and drops any cached aggregate so the
// dashboard reflects the seeded rows immediately.
func seedStore(ctx context.Context, db *gorm.DB, log *logger.Logger, cfg Config, summaryCache *cache.SummaryCache) {
	if err := seed.Run(ctx, db, log, cfg.SeedAgents, cfg.SeedEntriesPerAgent); err != nil {
		log.Warn("Startup seeding failed", "error", err)
		return
	}
	summaryCache.Invalidate(ctx)
}

func (a *App) Run() error {
	addr := ":" + a.Cfg.Port
	a.Log.Info("Starting HTTP server", "addr", addr)
	return a.Router.Run(addr)
}
