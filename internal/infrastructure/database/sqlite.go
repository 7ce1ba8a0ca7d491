package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/openstock/openstock-api/internal/config"
	"github.com/openstock/openstock-api/internal/domain/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// open creates the parent directory if needed and opens a SQLite database
// file with WAL journaling enabled.
func open(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path+"?_pragma=journal_mode(WAL)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	// SQLite allows a single writer; one connection avoids SQLITE_BUSY
	// under concurrent handlers.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// NewInventoryDB opens the inventory store and migrates its schema.
func NewInventoryDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := open(cfg.InventoryPath)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Tax{},
		&entity.Supplier{},
		&entity.Category{},
		&entity.Product{},
		&entity.ProductVariant{},
		&entity.StockMovement{},
		&entity.SupplierPrice{},
		&entity.SupplierPriceHistory{},
		&entity.SellingPriceHistory{},
		&entity.Settings{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate inventory store: %w", err)
	}

	if err := seedSettings(db); err != nil {
		log.Printf("Warning: failed to seed default settings: %v", err)
	}

	log.Printf("Inventory store ready at %s", cfg.InventoryPath)
	return db, nil
}

// NewHRDB opens the HR store and migrates its schema.
func NewHRDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := open(cfg.HRPath)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&entity.Department{},
		&entity.Employee{},
		&entity.Attendance{},
		&entity.LeaveType{},
		&entity.LeaveRequest{},
		&entity.PayrollPeriod{},
		&entity.PayrollRun{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate HR store: %w", err)
	}

	log.Printf("HR store ready at %s", cfg.HRPath)
	return db, nil
}

// NewFinanceDB opens the finance store and migrates its schema.
func NewFinanceDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := open(cfg.FinancePath)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&entity.Transaction{},
		&entity.CrossBorderTransaction{},
		&entity.ForexTransaction{},
		&entity.CryptoTransaction{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate finance store: %w", err)
	}

	log.Printf("Finance store ready at %s", cfg.FinancePath)
	return db, nil
}

// seedSettings inserts the settings singleton row if absent.
func seedSettings(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Settings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&entity.Settings{
		ID:              1,
		BusinessName:    "OpenStock Inc.",
		Currency:        "EUR",
		DefaultMargin:   30,
		LowStockAlert:   true,
		OutOfStockAlert: true,
	}).Error
}
