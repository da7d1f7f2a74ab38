package database

import (
	"fmt"
	"log"
	"time"

	"networth-tracker/internal/config"
	"networth-tracker/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps the gorm handle together with its pool configuration. It is
// constructed once at startup and injected everywhere; there is no lazy
// global connection.
type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Asset{},
		&models.AssetInput{},
		&models.IncomingItem{},
		&models.ExpenseSubcategory{},
		&models.ExpenseItem{},
		&models.Budget{},
		&models.CategoryAllocationTarget{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (db *DB) Transaction(fn func(*gorm.DB) error) error {
	return db.DB.Transaction(fn)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_subject ON users(subject)",
		"CREATE INDEX IF NOT EXISTS idx_assets_user_id ON assets(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_assets_category ON assets(category)",
		"CREATE INDEX IF NOT EXISTS idx_asset_inputs_user_period ON asset_inputs(user_id, year, month)",
		"CREATE INDEX IF NOT EXISTS idx_asset_inputs_asset_id ON asset_inputs(asset_id)",
		"CREATE INDEX IF NOT EXISTS idx_incoming_items_user_period ON incoming_items(user_id, year, month)",
		"CREATE INDEX IF NOT EXISTS idx_expense_items_user_period ON expense_items(user_id, year, month)",
		"CREATE INDEX IF NOT EXISTS idx_expense_items_subcategory ON expense_items(subcategory_id) WHERE subcategory_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_budgets_user_period ON budgets(user_id, year, month)",
		"CREATE INDEX IF NOT EXISTS idx_allocation_targets_user ON category_allocation_targets(user_id)",
		"CREATE INDEX IF NOT EXISTS idx_subcategories_user ON expense_subcategories(user_id)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// SeedReferenceData inserts the category catalog and the system default
// subcategories if they are not present. Safe to run on every startup.
func (db *DB) SeedReferenceData() error {
	for _, category := range models.DefaultCategories() {
		var count int64
		if err := db.DB.Model(&models.Category{}).
			Where("kind = ? AND code = ?", category.Kind, category.Code).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check category %s: %w", category.Code, err)
		}
		if count > 0 {
			continue
		}

		c := category
		if err := db.DB.Create(&c).Error; err != nil {
			return fmt.Errorf("failed to seed category %s: %w", category.Code, err)
		}
	}

	for _, subcategory := range models.DefaultSubcategories() {
		var count int64
		if err := db.DB.Model(&models.ExpenseSubcategory{}).
			Where("user_id IS NULL AND category = ? AND name = ?", subcategory.Category, subcategory.Name).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check subcategory %s: %w", subcategory.Name, err)
		}
		if count > 0 {
			continue
		}

		sc := subcategory
		if err := db.DB.Create(&sc).Error; err != nil {
			return fmt.Errorf("failed to seed subcategory %s: %w", subcategory.Name, err)
		}
	}

	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Run SQL-based migrations using golang-migrate if enabled
	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Printf("Warning: migration runner failed: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")
	}

	// AutoMigrate is idempotent and fills any gap left when SQL migrations
	// are disabled or absent.
	if err := db.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	if err := db.SeedReferenceData(); err != nil {
		return nil, fmt.Errorf("failed to seed reference data: %w", err)
	}

	log.Println("Database initialized successfully")

	return db, nil
}
