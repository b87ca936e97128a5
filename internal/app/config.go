package app

import (
	"strings"
	"time"

	"github.com/daxterlabs/daxter-backend/internal/logger"
	"github.com/daxterlabs/daxter-backend/internal/utils"
)

type Config struct {
	Port                string
	AllowOrigins        []string
	SummaryCacheTTL     time.Duration
	SummarizerMinDelay  time.Duration
	SummarizerMaxDelay  time.Duration
	SeedOnStart         bool
	SeedAgents          int
	SeedEntriesPerAgent int
}

func LoadConfig(log *logger.Logger) Config {
	origins := strings.Split(utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return Config{
		Port:                utils.GetEnv("SERVER_PORT", "8080", log),
		AllowOrigins:        origins,
		SummaryCacheTTL:     time.Duration(utils.GetEnvAsInt("SUMMARY_CACHE_TTL_SECONDS", 15, log)) * time.Second,
		SummarizerMinDelay:  time.Duration(utils.GetEnvAsInt("SUMMARIZER_MIN_DELAY_MS", 500, log)) * time.Millisecond,
		SummarizerMaxDelay:  time.Duration(utils.GetEnvAsInt("SUMMARIZER_MAX_DELAY_MS", 1500, log)) * time.Millisecond,
		SeedOnStart:         utils.GetEnvAsBool("SEED_ON_START", false, log),
		SeedAgents:          utils.GetEnvAsInt("SEED_AGENTS", 3, log),
		SeedEntriesPerAgent: utils.GetEnvAsInt("SEED_ENTRIES_PER_AGENT", 10, log),
	}
}
