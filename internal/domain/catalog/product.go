package catalog

import (
	"github.com/erp/order-import/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductType represents the kind of product
type ProductType string

const (
	ProductTypeService ProductType = "service"
)

// ProductCategory groups products in the catalog
type ProductCategory string

const (
	ProductCategoryService ProductCategory = "service"
)

// Product represents a catalog entry, matched by its internal reference code
type Product struct {
	shared.BaseAggregateRoot
	Code          string          `gorm:"type:varchar(100);not null;uniqueIndex"` // internal reference
	Name          string          `gorm:"type:varchar(200);not null"`
	Type          ProductType     `gorm:"type:varchar(20);not null;default:'service'"`
	Category      ProductCategory `gorm:"type:varchar(50);not null;default:'service'"`
	ListPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	StandardPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // cost price
	UomID         uuid.UUID       `gorm:"type:uuid;not null"`
	Active        bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewServiceProduct creates a new service product; list and cost price both
// take the incoming unit price on first sight.
func NewServiceProduct(code, name string, unitPrice decimal.Decimal, uomID uuid.UUID) (*Product, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		Type:              ProductTypeService,
		Category:          ProductCategoryService,
		ListPrice:         unitPrice,
		StandardPrice:     unitPrice,
		UomID:             uomID,
		Active:            true,
	}, nil
}

// ApplyFields overwrites the product's mutable fields. Only the batch mapping
// flow updates products on match; the orchestrated flow never does.
func (p *Product) ApplyFields(name string, listPrice decimal.Decimal, uomID uuid.UUID) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	p.Name = name
	p.ListPrice = listPrice
	if uomID != uuid.Nil {
		p.UomID = uomID
	}
	p.IncrementVersion()
	return nil
}
