package trade

import (
	"context"

	"github.com/google/uuid"
)

// SalesOrderRepository defines the persistence contract for sales orders
type SalesOrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SalesOrder, error)
	FindByClientOrderRef(ctx context.Context, ref string) (*SalesOrder, error)
	FindByName(ctx context.Context, name string) (*SalesOrder, error)
	Save(ctx context.Context, o *SalesOrder) error
}

// OrderLineRepository defines the persistence contract for order lines
type OrderLineRepository interface {
	// FindByOrderAndProductCode finds a line on an order whose product carries
	// the given internal reference code.
	FindByOrderAndProductCode(ctx context.Context, orderID uuid.UUID, productCode string) (*OrderLine, error)
	// FindByOrderProductName matches a line by order, product and label,
	// the composite key used by the batch mapping flow.
	FindByOrderProductName(ctx context.Context, orderID, productID uuid.UUID, name string) (*OrderLine, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]OrderLine, error)
	Save(ctx context.Context, l *OrderLine) error
}

// PaymentTermRepository defines the persistence contract for payment terms
type PaymentTermRepository interface {
	FindByName(ctx context.Context, name string) (*PaymentTerm, error)
	// FindFirst returns an arbitrary existing term, used as the documented
	// fallback when the named term is unknown.
	FindFirst(ctx context.Context) (*PaymentTerm, error)
	Save(ctx context.Context, t *PaymentTerm) error
}
