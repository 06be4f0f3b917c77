package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/erp/order-import/internal/infrastructure/config"
	"github.com/erp/order-import/internal/infrastructure/logger"
	"github.com/erp/order-import/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// migrate applies the GORM auto-migration for all aggregates and seeds
// the reference data (default unit of measure, default payment term).
func main() {
	var (
		skipSeed = flag.Bool("skip-seed", false, "run schema migration only, without seeding reference data")
		logLevel = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	)
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:  *logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(*logLevel))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	log.Info("Running schema migration",
		zap.String("driver", cfg.Database.Driver),
		zap.String("database", cfg.Database.DBName),
	)
	if err := db.Migrate(); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
	log.Info("Schema migration complete")

	if *skipSeed {
		return
	}

	if err := db.Seed(&cfg.Seed); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
	log.Info("Reference data seeded",
		zap.String("default_unit", cfg.Seed.DefaultUnit),
		zap.String("default_payment_term", cfg.Seed.DefaultPaymentTerm),
	)
}
