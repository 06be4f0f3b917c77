package persistence

import (
	"testing"

	"github.com/erp/order-import/internal/domain/catalog"
	"github.com/erp/order-import/internal/domain/partner"
	"github.com/erp/order-import/internal/domain/trade"
	"github.com/erp/order-import/internal/domain/training"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&partner.Partner{},
		&catalog.UnitOfMeasure{},
		&catalog.Product{},
		&trade.PaymentTerm{},
		&trade.SalesOrder{},
		&trade.OrderLine{},
		&training.Session{},
	)
	require.NoError(t, err)

	return db
}
