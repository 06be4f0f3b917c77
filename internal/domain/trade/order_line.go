package trade

import (
	"github.com/erp/order-import/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FirstLineSequence is the sequence assigned to the first imported order line
const FirstLineSequence = 10

// OrderLine represents a line on a sales order. Lines are append-only through
// the import path: once a line exists for (order, product) it is never touched.
type OrderLine struct {
	shared.BaseEntity
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(200);not null"` // line label
	Quantity      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UomID         uuid.UUID       `gorm:"type:uuid;not null"`
	PriceUnit     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Discount      decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"` // percent
	PriceSubtotal decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Sequence      int             `gorm:"not null;default:10"`
}

// TableName returns the table name for GORM
func (OrderLine) TableName() string {
	return "order_lines"
}

// NewOrderLine creates a new order line
func NewOrderLine(orderID, productID, uomID uuid.UUID, name string, quantity, priceUnit, discount, subtotal decimal.Decimal, sequence int) (*OrderLine, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	return &OrderLine{
		BaseEntity:    shared.NewBaseEntity(),
		OrderID:       orderID,
		ProductID:     productID,
		Name:          name,
		Quantity:      quantity,
		UomID:         uomID,
		PriceUnit:     priceUnit,
		Discount:      discount,
		PriceSubtotal: subtotal,
		Sequence:      sequence,
	}, nil
}

// ApplyFields overwrites the line's mutable fields (batch mapping flow only)
func (l *OrderLine) ApplyFields(quantity, priceUnit, discount decimal.Decimal, uomID uuid.UUID) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	l.Quantity = quantity
	l.PriceUnit = priceUnit
	l.Discount = discount
	if uomID != uuid.Nil {
		l.UomID = uomID
	}
	return nil
}
