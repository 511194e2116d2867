package main

import (
	"franchise-backend/internal/config"
	"franchise-backend/internal/database"

	"gorm.io/gorm"
)

// openDatabase opens the configured store and migrates the schema
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.DatabaseURL
	if cfg.DatabaseDriver == database.DriverSQLite {
		dsn = database.SQLiteDSN(cfg.SQLitePath)
	}
	return database.Initialize(dsn, &database.Options{Driver: cfg.DatabaseDriver})
}
