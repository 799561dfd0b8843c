package database

import (
	"fmt"
	"testing"
	"time"

	"receipt-insights/internal/config"
	"receipt-insights/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         "sqlite",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestReceipt(t *testing.T, db *DB, filename, merchant string, amount float64) *models.Receipt {
	t.Helper()

	total := decimal.NewFromFloat(amount)
	receipt := &models.Receipt{
		Filename:     filename,
		MerchantName: &merchant,
		TotalAmount:  &total,
		CreatedAt:    time.Now().UTC(),
	}

	if err := db.Create(receipt).Error; err != nil {
		t.Fatalf("failed to create test receipt: %v", err)
	}

	return receipt
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"receipt_items",
		"receipts",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
