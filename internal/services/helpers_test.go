package services

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/daxterlabs/daxter-backend/internal/logger"
	"github.com/daxterlabs/daxter-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.FinancialRecord{}, &types.AISummary{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func validInput() types.RecordInput {
	return types.RecordInput{
		AgentID:      "AG1",
		ClientName:   "Acme",
		TaxLiability: 1000,
		TotalRevenue: 5000,
		PeriodStart:  types.FlexTime{Time: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		PeriodEnd:    types.FlexTime{Time: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)},
	}
}
