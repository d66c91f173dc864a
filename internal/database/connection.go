// internal/database/connection.go
package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shelftrack/shelftrack-backend/internal/config"
	"github.com/shelftrack/shelftrack-backend/internal/models"
)

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("Database connection established successfully")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	// gen_random_uuid() needs pgcrypto on Postgres < 13
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"pgcrypto\"").Error; err != nil {
		return fmt.Errorf("failed to create pgcrypto extension: %w", err)
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Store{},
		&models.Inventory{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// AutoMigrate builds the unique indexes from the struct tags; the cascade
	// rule on the inventory foreign keys is restated here so a schema that
	// predates the constraint tags is brought in line.
	if err := enforceCascadeRules(db); err != nil {
		return fmt.Errorf("failed to enforce cascade rules: %w", err)
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}

func enforceCascadeRules(db *gorm.DB) error {
	constraints := []struct {
		name string
		ddl  string
	}{
		{
			name: "fk_products_inventories",
			ddl: "ALTER TABLE inventories ADD CONSTRAINT fk_products_inventories " +
				"FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE",
		},
		{
			name: "fk_stores_inventories",
			ddl: "ALTER TABLE inventories ADD CONSTRAINT fk_stores_inventories " +
				"FOREIGN KEY (store_id) REFERENCES stores(id) ON DELETE CASCADE",
		},
	}

	for _, c := range constraints {
		var count int64
		db.Raw(
			"SELECT COUNT(*) FROM information_schema.table_constraints "+
				"WHERE table_name = 'inventories' AND constraint_name = ?", c.name,
		).Scan(&count)
		if count > 0 {
			continue
		}
		if err := db.Exec(c.ddl).Error; err != nil {
			return err
		}
	}

	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
