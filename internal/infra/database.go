package infra

import (
	"fmt"

	"github.com/eder5on/Estoque/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate to create / update all tables.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return db, nil
}

// RunMigrations applies the schema. Also used by the integration test
// harness against a throwaway container.
func RunMigrations(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("pgcrypto extension: %w", err)
	}
	return db.AutoMigrate(
		&model.Company{},
		&model.InventoryLocation{},
		&model.Category{},
		&model.Product{},
		&model.InventoryRecord{},
		&model.StockMovement{},
		&model.Customer{},
		&model.Supplier{},
		&model.Sale{},
		&model.SaleItem{},
		&model.Rental{},
		&model.RentalItem{},
		&model.User{},
		&model.APIKey{},
	)
}
