package persistence

import (
	"context"
	"errors"

	"github.com/erp/order-import/internal/domain/shared"
	"github.com/erp/order-import/internal/domain/trade"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSalesOrderRepository implements SalesOrderRepository using GORM
type GormSalesOrderRepository struct {
	db *gorm.DB
}

// NewGormSalesOrderRepository creates a new GormSalesOrderRepository
func NewGormSalesOrderRepository(db *gorm.DB) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{db: db}
}

// FindByID finds a sales order by its ID
func (r *GormSalesOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SalesOrder, error) {
	var o trade.SalesOrder
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindByClientOrderRef finds a sales order by its client order reference
func (r *GormSalesOrderRepository) FindByClientOrderRef(ctx context.Context, ref string) (*trade.SalesOrder, error) {
	var o trade.SalesOrder
	if err := r.db.WithContext(ctx).Where("client_order_ref = ?", ref).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindByName finds a sales order by its order name
func (r *GormSalesOrderRepository) FindByName(ctx context.Context, name string) (*trade.SalesOrder, error) {
	var o trade.SalesOrder
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// Save creates or updates a sales order
func (r *GormSalesOrderRepository) Save(ctx context.Context, o *trade.SalesOrder) error {
	return r.db.WithContext(ctx).Save(o).Error
}
