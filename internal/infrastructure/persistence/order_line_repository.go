package persistence

import (
	"context"
	"errors"

	"github.com/erp/order-import/internal/domain/shared"
	"github.com/erp/order-import/internal/domain/trade"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderLineRepository implements OrderLineRepository using GORM
type GormOrderLineRepository struct {
	db *gorm.DB
}

// NewGormOrderLineRepository creates a new GormOrderLineRepository
func NewGormOrderLineRepository(db *gorm.DB) *GormOrderLineRepository {
	return &GormOrderLineRepository{db: db}
}

// FindByOrderAndProductCode finds a line on an order whose product carries
// the given internal reference code.
func (r *GormOrderLineRepository) FindByOrderAndProductCode(ctx context.Context, orderID uuid.UUID, productCode string) (*trade.OrderLine, error) {
	var l trade.OrderLine
	err := r.db.WithContext(ctx).
		Joins("JOIN products ON products.id = order_lines.product_id").
		Where("order_lines.order_id = ? AND products.code = ?", orderID, productCode).
		First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// FindByOrderProductName matches a line by order, product and label
func (r *GormOrderLineRepository) FindByOrderProductName(ctx context.Context, orderID, productID uuid.UUID, name string) (*trade.OrderLine, error) {
	var l trade.OrderLine
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND product_id = ? AND name = ?", orderID, productID, name).
		First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// ListByOrder returns all lines of an order in sequence order
func (r *GormOrderLineRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]trade.OrderLine, error) {
	var lines []trade.OrderLine
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("sequence ASC").
		Find(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// Save creates or updates an order line
func (r *GormOrderLineRepository) Save(ctx context.Context, l *trade.OrderLine) error {
	return r.db.WithContext(ctx).Save(l).Error
}
