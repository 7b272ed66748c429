package sqlstore

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"mccrew-ai/internal/crew/repository"
	"mccrew-ai/pkg/log"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config selects the SQL backend.
type Config struct {
	Driver string
	DSN    string
}

// Open connects to the configured database and migrates the crew schema.
func Open(cfg Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case DriverPostgres:
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DSN,
			PreferSimpleProtocol: true,
		}), gormCfg)
	case DriverSQLite:
		dsn := cfg.DSN
		if dsn == "" {
			dsn = "mccrew.db"
		}
		db, err = gorm.Open(sqlite.Open(dsn), gormCfg)
	default:
		return nil, fmt.Errorf("sqlstore: unsupported driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open %s: %w", cfg.Driver, err)
	}

	if err := db.AutoMigrate(&employeeRow{}, &shiftRow{}, &payConfigRow{}, &swapRow{}); err != nil {
		return nil, fmt.Errorf("sqlstore: migrate: %w", err)
	}
	return db, nil
}

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a GORM-backed crew repository.
func New(db *gorm.DB, l log.Logger) *implRepository {
	return &implRepository{db: db, l: l}
}
