package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/erp/order-import/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(&config.DatabaseConfig{
		Driver:          "sqlite",
		SQLitePath:      filepath.Join(t.TempDir(), "orders.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 60,
		ConnMaxIdleTime: 30,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNewDatabase_UnknownDriver(t *testing.T) {
	_, err := NewDatabase(&config.DatabaseConfig{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestDatabase_MigrateAndSeed(t *testing.T) {
	db := newTestDatabase(t)
	require.NoError(t, db.Migrate())

	seed := &config.SeedConfig{DefaultUnit: "Unit", DefaultPaymentTerm: "Immediate Payment"}
	require.NoError(t, db.Seed(seed))

	ctx := context.Background()

	unit, err := NewGormUnitOfMeasureRepository(db.DB).FindByName(ctx, "Unit")
	require.NoError(t, err)
	assert.Equal(t, "Unit", unit.Name)

	term, err := NewGormPaymentTermRepository(db.DB).FindByName(ctx, "Immediate Payment")
	require.NoError(t, err)

	// seeding again is a no-op
	require.NoError(t, db.Seed(seed))
	again, err := NewGormUnitOfMeasureRepository(db.DB).FindByName(ctx, "Unit")
	require.NoError(t, err)
	assert.Equal(t, unit.ID, again.ID)
	termAgain, err := NewGormPaymentTermRepository(db.DB).FindByName(ctx, "Immediate Payment")
	require.NoError(t, err)
	assert.Equal(t, term.ID, termAgain.ID)

	assert.NoError(t, db.Ping())
}
