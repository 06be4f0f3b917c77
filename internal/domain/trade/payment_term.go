package trade

import (
	"github.com/erp/order-import/internal/domain/shared"
)

// PaymentTerm represents a payment condition, matched by name
type PaymentTerm struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (PaymentTerm) TableName() string {
	return "payment_terms"
}

// NewPaymentTerm creates a new payment term
func NewPaymentTerm(name string) (*PaymentTerm, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Payment term name cannot be empty")
	}
	return &PaymentTerm{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}
