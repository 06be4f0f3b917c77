package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the persistence contract for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByCode(ctx context.Context, code string) (*Product, error)
	Save(ctx context.Context, p *Product) error
}

// UnitOfMeasureRepository defines the persistence contract for units of measure
type UnitOfMeasureRepository interface {
	FindByName(ctx context.Context, name string) (*UnitOfMeasure, error)
	Save(ctx context.Context, u *UnitOfMeasure) error
}
