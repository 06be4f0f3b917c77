package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/erp/order-import/internal/domain/catalog"
	"github.com/erp/order-import/internal/domain/partner"
	"github.com/erp/order-import/internal/domain/shared"
	"github.com/erp/order-import/internal/domain/trade"
	"github.com/erp/order-import/internal/domain/training"
	"github.com/erp/order-import/internal/infrastructure/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database holds the database connection and provides methods for database operations
type Database struct {
	DB *gorm.DB
}

// NewDatabase creates a new database connection with the given configuration
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	return NewDatabaseWithLogger(cfg, logger.Default.LogMode(logger.Silent))
}

// NewDatabaseWithLogger creates a new database connection with a custom GORM logger
func NewDatabaseWithLogger(cfg *config.DatabaseConfig, gormLogger logger.Interface) (*Database, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{DB: db}, nil
}

func openDialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		return postgres.Open(cfg.DSN()), nil
	case "sqlite":
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Ping checks if the database connection is alive
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Ping()
}

// Transaction executes a function within a database transaction
func (d *Database) Transaction(fn func(tx *gorm.DB) error) error {
	return d.DB.Transaction(fn)
}

// Migrate creates or updates the schema for every persisted aggregate
func (d *Database) Migrate() error {
	return d.DB.AutoMigrate(
		&partner.Partner{},
		&catalog.UnitOfMeasure{},
		&catalog.Product{},
		&trade.PaymentTerm{},
		&trade.SalesOrder{},
		&trade.OrderLine{},
		&training.Session{},
	)
}

// Seed creates the reference records the import flow falls back to: the
// default unit of measure and the default payment term. It is idempotent.
func (d *Database) Seed(cfg *config.SeedConfig) error {
	ctx := context.Background()

	uoms := NewGormUnitOfMeasureRepository(d.DB)
	if _, err := uoms.FindByName(ctx, cfg.DefaultUnit); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		unit, err := catalog.NewUnitOfMeasure(cfg.DefaultUnit)
		if err != nil {
			return err
		}
		if err := uoms.Save(ctx, unit); err != nil {
			return err
		}
	}

	terms := NewGormPaymentTermRepository(d.DB)
	if _, err := terms.FindByName(ctx, cfg.DefaultPaymentTerm); err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		term, err := trade.NewPaymentTerm(cfg.DefaultPaymentTerm)
		if err != nil {
			return err
		}
		if err := terms.Save(ctx, term); err != nil {
			return err
		}
	}

	return nil
}
