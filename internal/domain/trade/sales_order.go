package trade

import (
	"time"

	"github.com/erp/order-import/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderState represents the lifecycle state of a sales order
type OrderState string

const (
	OrderStateDraft OrderState = "draft"
	OrderStateSale  OrderState = "sale"
	OrderStateDone  OrderState = "done"
)

// SalesOrder represents a confirmed sales order created from an imported
// document. The external order number is carried in ClientOrderRef and is
// the natural key for duplicate detection.
type SalesOrder struct {
	shared.BaseAggregateRoot
	Name           string          `gorm:"type:varchar(100);not null;index"`
	PartnerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ClientOrderRef string          `gorm:"type:varchar(100);not null;index"`
	DateOrder      time.Time       `gorm:"not null"`
	PaymentTermID  *uuid.UUID      `gorm:"type:uuid"`
	AmountUntaxed  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	AmountTax      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	AmountTotal    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	State          OrderState      `gorm:"type:varchar(20);not null;default:'draft'"`
}

// TableName returns the table name for GORM
func (SalesOrder) TableName() string {
	return "sales_orders"
}

// OrderAmounts carries the totals taken directly from the imported document.
// They are not recomputed from line subtotals.
type OrderAmounts struct {
	Untaxed decimal.Decimal
	Tax     decimal.Decimal
	Total   decimal.Decimal
}

// NewSalesOrder creates a confirmed sales order for an imported document
func NewSalesOrder(partnerID uuid.UUID, clientOrderRef string, dateOrder time.Time, paymentTermID *uuid.UUID, amounts OrderAmounts) (*SalesOrder, error) {
	if partnerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTNER", "Partner ID cannot be empty")
	}
	if clientOrderRef == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_REF", "Client order reference cannot be empty")
	}
	return &SalesOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              clientOrderRef,
		PartnerID:         partnerID,
		ClientOrderRef:    clientOrderRef,
		DateOrder:         dateOrder,
		PaymentTermID:     paymentTermID,
		AmountUntaxed:     amounts.Untaxed,
		AmountTax:         amounts.Tax,
		AmountTotal:       amounts.Total,
		State:             OrderStateSale,
	}, nil
}

// ApplyFields overwrites the order's mutable fields (batch mapping flow only)
func (o *SalesOrder) ApplyFields(partnerID uuid.UUID, dateOrder time.Time, amounts OrderAmounts) error {
	if partnerID == uuid.Nil {
		return shared.NewDomainError("INVALID_PARTNER", "Partner ID cannot be empty")
	}
	o.PartnerID = partnerID
	if !dateOrder.IsZero() {
		o.DateOrder = dateOrder
	}
	o.AmountUntaxed = amounts.Untaxed
	o.AmountTax = amounts.Tax
	o.AmountTotal = amounts.Total
	o.IncrementVersion()
	return nil
}
