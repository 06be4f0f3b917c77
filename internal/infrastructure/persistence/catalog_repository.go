package persistence

import (
	"context"
	"errors"

	"github.com/erp/order-import/internal/domain/catalog"
	"github.com/erp/order-import/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var p catalog.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByCode finds a product by its internal reference code
func (r *GormProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	var p catalog.Product
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// GormUnitOfMeasureRepository implements UnitOfMeasureRepository using GORM
type GormUnitOfMeasureRepository struct {
	db *gorm.DB
}

// NewGormUnitOfMeasureRepository creates a new GormUnitOfMeasureRepository
func NewGormUnitOfMeasureRepository(db *gorm.DB) *GormUnitOfMeasureRepository {
	return &GormUnitOfMeasureRepository{db: db}
}

// FindByName finds a unit of measure by name
func (r *GormUnitOfMeasureRepository) FindByName(ctx context.Context, name string) (*catalog.UnitOfMeasure, error) {
	var u catalog.UnitOfMeasure
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Save creates or updates a unit of measure
func (r *GormUnitOfMeasureRepository) Save(ctx context.Context, u *catalog.UnitOfMeasure) error {
	return r.db.WithContext(ctx).Save(u).Error
}
