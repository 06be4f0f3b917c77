package persistence

import (
	"context"
	"errors"

	"github.com/erp/order-import/internal/domain/shared"
	"github.com/erp/order-import/internal/domain/trade"
	"gorm.io/gorm"
)

// GormPaymentTermRepository implements PaymentTermRepository using GORM
type GormPaymentTermRepository struct {
	db *gorm.DB
}

// NewGormPaymentTermRepository creates a new GormPaymentTermRepository
func NewGormPaymentTermRepository(db *gorm.DB) *GormPaymentTermRepository {
	return &GormPaymentTermRepository{db: db}
}

// FindByName finds a payment term by name
func (r *GormPaymentTermRepository) FindByName(ctx context.Context, name string) (*trade.PaymentTerm, error) {
	var t trade.PaymentTerm
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindFirst returns the oldest existing payment term, used as the fallback
// when the requested term is unknown.
func (r *GormPaymentTermRepository) FindFirst(ctx context.Context) (*trade.PaymentTerm, error) {
	var t trade.PaymentTerm
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Save creates or updates a payment term
func (r *GormPaymentTermRepository) Save(ctx context.Context, t *trade.PaymentTerm) error {
	return r.db.WithContext(ctx).Save(t).Error
}
