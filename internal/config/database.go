package config

import (
	"fmt"

	"kdos-backend/internal/models"
	"kdos-backend/pkg/utils"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the shared connection pool used by every handler.
var DB *gorm.DB

// ConnectDB opens the configured database, migrates the schema and stores
// the pool in DB. It exits the process when the database is unreachable.
func ConnectDB(cfg Config) {
	level := logger.Warn
	if cfg.LogLevel == "debug" {
		level = logger.Info
	}

	db, err := Open(cfg.DBDriver, cfg.DBDSN, level)
	if err != nil {
		utils.Log.WithError(err).Fatal("Failed to connect to database")
	}

	if err := Migrate(db); err != nil {
		utils.Log.WithError(err).Fatal("Failed to migrate database schema")
	}

	DB = db
	utils.Log.WithField("driver", cfg.DBDriver).Info("Database connection established")
}

// Open returns a GORM handle for driver ("mysql" or "sqlite").
func Open(driver, dsn string, level logger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// SQLite allows one writer; a single connection also keeps an
		// in-memory database alive for the lifetime of the pool.
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}
