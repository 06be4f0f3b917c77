package persistence

import (
	"context"
	"errors"

	"github.com/erp/order-import/internal/domain/partner"
	"github.com/erp/order-import/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPartnerRepository implements PartnerRepository using GORM
type GormPartnerRepository struct {
	db *gorm.DB
}

// NewGormPartnerRepository creates a new GormPartnerRepository
func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

// FindByID finds a partner by its ID
func (r *GormPartnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	var p partner.Partner
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindBySIREN finds a partner by its SIREN number
func (r *GormPartnerRepository) FindBySIREN(ctx context.Context, siren string) (*partner.Partner, error) {
	if siren == "" {
		return nil, shared.ErrNotFound
	}
	return r.first(ctx, "siren = ?", siren)
}

// FindBySIRET finds a partner by its SIRET number
func (r *GormPartnerRepository) FindBySIRET(ctx context.Context, siret string) (*partner.Partner, error) {
	if siret == "" {
		return nil, shared.ErrNotFound
	}
	return r.first(ctx, "siret = ?", siret)
}

// FindByVAT finds a partner by its VAT number
func (r *GormPartnerRepository) FindByVAT(ctx context.Context, vat string) (*partner.Partner, error) {
	if vat == "" {
		return nil, shared.ErrNotFound
	}
	return r.first(ctx, "vat = ?", vat)
}

// FindTrainerByName finds a trainer partner by display name
func (r *GormPartnerRepository) FindTrainerByName(ctx context.Context, name string) (*partner.Partner, error) {
	return r.first(ctx, "name = ? AND is_trainer = ?", name, true)
}

// FindByNameAndType matches partners by display name and contact type;
// parentID narrows the match to contacts of a given company when non-nil.
func (r *GormPartnerRepository) FindByNameAndType(ctx context.Context, name string, partnerType partner.PartnerType, parentID *uuid.UUID) (*partner.Partner, error) {
	query := r.db.WithContext(ctx).Where("name = ? AND type = ?", name, partnerType)
	if parentID != nil {
		query = query.Where("parent_id = ?", *parentID)
	} else {
		query = query.Where("parent_id IS NULL")
	}

	var p partner.Partner
	if err := query.First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Save creates or updates a partner
func (r *GormPartnerRepository) Save(ctx context.Context, p *partner.Partner) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *GormPartnerRepository) first(ctx context.Context, query string, args ...any) (*partner.Partner, error) {
	var p partner.Partner
	if err := r.db.WithContext(ctx).Where(query, args...).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
