package app

import (
	"gorm.io/gorm"

	"github.com/daxterlabs/daxter-backend/internal/logger"
	"github.com/daxterlabs/daxter-backend/internal/repos"
)

type Repos struct {
	Record  repos.RecordRepo
	Summary repos.SummaryRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Record:  repos.NewRecordRepo(db, log),
		Summary: repos.NewSummaryRepo(db, log),
	}
}
