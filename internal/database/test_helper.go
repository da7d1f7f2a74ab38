package database

import (
	"fmt"
	"testing"

	"networth-tracker/internal/config"
	"networth-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v6"
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
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if err := testDB.SeedReferenceData(); err != nil {
		t.Fatalf("failed to seed reference data: %v", err)
	}

	return testDB
}

func CreateTestUser(t *testing.T, db *DB) *models.User {
	t.Helper()

	user := &models.User{
		Subject:     gofakeit.UUID(),
		Email:       gofakeit.Email(),
		DisplayName: gofakeit.Name(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestAsset(t *testing.T, db *DB, user *models.User, category string) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		UserID:   user.ID,
		Name:     gofakeit.Company(),
		Category: category,
	}

	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}

	return asset
}

func CreateTestAssetInput(t *testing.T, db *DB, user *models.User, asset *models.Asset, year, month int, value float64) *models.AssetInput {
	t.Helper()

	input := &models.AssetInput{
		UserID:  user.ID,
		AssetID: asset.ID,
		Year:    year,
		Month:   month,
		Value:   decimal.NewFromFloat(value),
	}

	if err := db.Create(input).Error; err != nil {
		t.Fatalf("failed to create test asset input: %v", err)
	}

	return input
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"expense_items",
		"incoming_items",
		"budgets",
		"category_allocation_targets",
		"asset_inputs",
		"assets",
		"expense_subcategories",
		"categories",
		"users",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
