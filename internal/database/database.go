package database

import (
	"fmt"
	"time"

	"franchise-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Options struct {
	Driver          string
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Initialize opens the store and creates the schema from GORM models.
// dsn is a Postgres URL for the postgres driver and a file path or
// "file:...?..." URI for sqlite.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.Driver == "" {
		opts.Driver = DriverPostgres
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	var dialector gorm.Dialector
	switch opts.Driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		NowFunc:        models.Now,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.Driver, err)
	}
	if sqlDB, err := db.DB(); err == nil {
		if opts.Driver == DriverSQLite {
			// One connection: an in-memory database lives and dies with it,
			// and SQLite serializes writers anyway.
			sqlDB.SetMaxOpenConns(1)
			sqlDB.SetMaxIdleConns(1)
			sqlDB.SetConnMaxLifetime(0)
			sqlDB.SetConnMaxIdleTime(0)
		} else {
			sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
			sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
			sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
			sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
		}
	}

	if !opts.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates or updates the schema. Parents are migrated before children
// so the foreign keys can be created.
func Migrate(db *gorm.DB) error {
	all := []interface{}{
		&models.Franchise{},
		&models.Branch{},
		&models.Product{},
	}
	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// SQLiteDSN builds a SQLite DSN with foreign key enforcement turned on.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
}

// SQLiteMemoryDSN builds a DSN for a named in-memory SQLite database.
func SQLiteMemoryDSN(name string) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
}
