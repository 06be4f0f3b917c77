package catalog

import (
	"github.com/erp/order-import/internal/domain/shared"
)

// DefaultUnitName is the canonical fallback unit of measure
const DefaultUnitName = "Unit"

// UnitOfMeasure represents a unit products are sold in, matched by name
type UnitOfMeasure struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (UnitOfMeasure) TableName() string {
	return "units_of_measure"
}

// NewUnitOfMeasure creates a new unit of measure
func NewUnitOfMeasure(name string) (*UnitOfMeasure, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Unit of measure name cannot be empty")
	}
	return &UnitOfMeasure{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}
