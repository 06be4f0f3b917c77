package orderimport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/erp/order-import/internal/domain/catalog"
	"github.com/erp/order-import/internal/domain/partner"
	"github.com/erp/order-import/internal/domain/shared"
	"github.com/erp/order-import/internal/domain/trade"
	"github.com/erp/order-import/internal/domain/training"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImportResult is the structured outcome of a single import call. It is
// serialized as-is to the caller; exactly one of Success/Warning/Error is set.
type ImportResult struct {
	Success bool       `json:"success,omitempty"`
	Warning string     `json:"warning,omitempty"`
	Error   string     `json:"error,omitempty"`
	OrderID *uuid.UUID `json:"order_id,omitempty"`
	Message string     `json:"message,omitempty"`
	Code    string     `json:"code"`
}

// OrderImportService reconciles an incoming order document into persistent
// partner, product, order, line and training-session records.
//
// Stages run in a fixed order and the first failing stage aborts the rest;
// records created by earlier stages are deliberately not rolled back.
type OrderImportService struct {
	partners partner.PartnerRepository
	products catalog.ProductRepository
	uoms     catalog.UnitOfMeasureRepository
	orders   trade.SalesOrderRepository
	lines    trade.OrderLineRepository
	terms    trade.PaymentTermRepository
	sessions training.SessionRepository
	logger   *zap.Logger
}

// NewOrderImportService creates a new OrderImportService
func NewOrderImportService(
	partners partner.PartnerRepository,
	products catalog.ProductRepository,
	uoms catalog.UnitOfMeasureRepository,
	orders trade.SalesOrderRepository,
	lines trade.OrderLineRepository,
	terms trade.PaymentTermRepository,
	sessions training.SessionRepository,
	logger *zap.Logger,
) *OrderImportService {
	return &OrderImportService{
		partners: partners,
		products: products,
		uoms:     uoms,
		orders:   orders,
		lines:    lines,
		terms:    terms,
		sessions: sessions,
		logger:   logger.Named("order_import"),
	}
}

// Import processes a delivery envelope and returns a structured result.
// It never returns an error: every failure mode maps to a result code.
func (s *OrderImportService) Import(ctx context.Context, envelope Envelope) *ImportResult {
	if len(envelope) == 0 {
		return &ImportResult{Error: "Invalid data format", Code: CodeInvalidFormat}
	}
	payload := &envelope[0].Message.Content

	if result := ValidatePayload(payload); !result.Valid {
		return &ImportResult{Error: result.Reason, Code: CodeValidationError}
	}

	orderNumber := payload.Document.OrderNumber
	s.logger.Info("importing order", zap.String("order_number", orderNumber))

	existing, err := s.orders.FindByClientOrderRef(ctx, orderNumber)
	if err == nil {
		s.logger.Info("order already exists, skipping import",
			zap.String("order_number", orderNumber),
			zap.String("order_id", existing.ID.String()))
		return &ImportResult{
			Warning: "Order already exists",
			OrderID: &existing.ID,
			Message: fmt.Sprintf("Order %s already exists", orderNumber),
			Code:    CodeOrderExists,
		}
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return s.unexpectedError(err)
	}

	buyer, err := s.resolvePartner(ctx, payload.Customer)
	if err != nil {
		s.logger.Error("partner stage failed", zap.String("order_number", orderNumber), zap.Error(err))
		return &ImportResult{Error: fmt.Sprintf("Error creating partner: %v", err), Code: CodePartnerError}
	}

	order, err := s.createOrder(ctx, payload, buyer.ID)
	if err != nil {
		s.logger.Error("order stage failed", zap.String("order_number", orderNumber), zap.Error(err))
		return &ImportResult{Error: fmt.Sprintf("Error creating order: %v", err), Code: CodeOrderError}
	}

	if err := s.createLines(ctx, order.ID, payload.OrderLines); err != nil {
		s.logger.Error("lines stage failed", zap.String("order_number", orderNumber), zap.Error(err))
		return &ImportResult{Error: fmt.Sprintf("Error creating order lines: %v", err), Code: CodeLinesError}
	}

	if payload.Training != nil {
		if err := s.createSessions(ctx, order.ID, payload.Training); err != nil {
			s.logger.Error("sessions stage failed", zap.String("order_number", orderNumber), zap.Error(err))
			return &ImportResult{Error: fmt.Sprintf("Error creating training sessions: %v", err), Code: CodeSessionsError}
		}
	}

	s.logger.Info("order imported",
		zap.String("order_number", orderNumber),
		zap.String("order_id", order.ID.String()))
	return &ImportResult{
		Success: true,
		OrderID: &order.ID,
		Message: "Order successfully imported",
		Code:    CodeSuccess,
	}
}

// unexpectedError classifies failures happening outside the named stages
func (s *OrderImportService) unexpectedError(err error) *ImportResult {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return &ImportResult{Error: domainErr.Message, Code: CodeUserError}
	}
	return &ImportResult{Error: err.Error(), Code: CodeUnknownError}
}

// resolvePartner finds the customer partner by SIREN, then SIRET, then VAT,
// stopping at the first match; the incoming fields overwrite whatever is
// found, or a new partner is created.
func (s *OrderImportService) resolvePartner(ctx context.Context, c *Customer) (*partner.Partner, error) {
	siren := partner.NormalizeSIREN(c.Siren)

	found, err := s.partners.FindBySIREN(ctx, siren)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if found == nil && len(c.Siret) > 0 {
		found, err = s.partners.FindBySIRET(ctx, partner.NormalizeSIREN(c.Siret[0]))
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	}
	if found == nil && c.TVA != "" {
		found, err = s.partners.FindByVAT(ctx, c.TVA)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	}

	fields := partner.CustomerFields{
		Name:  c.CompanyName,
		SIREN: siren,
		VAT:   c.TVA,
		Email: c.BillingEmail,
	}
	if len(c.Siret) > 0 {
		fields.SIRET = c.Siret[0]
	}
	if len(c.Addresses) > 0 {
		fields.Street = c.Addresses[0].AddressLine
		fields.Zip = c.Addresses[0].PostalCode
		fields.City = c.Addresses[0].City
		fields.Country = c.Addresses[0].Country
	}
	if c.Contact != nil {
		fields.Phone = c.Contact.Phone
	}

	if found == nil {
		created, err := partner.NewCustomer(fields)
		if err != nil {
			return nil, err
		}
		if err := s.partners.Save(ctx, created); err != nil {
			return nil, err
		}
		return created, nil
	}

	if err := found.ApplyCustomerFields(fields); err != nil {
		return nil, err
	}
	if err := s.partners.Save(ctx, found); err != nil {
		return nil, err
	}
	return found, nil
}

// createOrder creates the sales order from the document header and amounts.
// Totals come straight from the payload; they are not recomputed from lines.
func (s *OrderImportService) createOrder(ctx context.Context, payload *OrderPayload, partnerID uuid.UUID) (*trade.SalesOrder, error) {
	dateOrder, err := time.Parse(OrderDateLayout, payload.Document.OrderDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ORDER_DATE", fmt.Sprintf("Invalid order date %q", payload.Document.OrderDate))
	}

	termID, err := s.paymentTerm(ctx, payload.PaymentTerms)
	if err != nil {
		return nil, err
	}

	order, err := trade.NewSalesOrder(partnerID, payload.Document.OrderNumber, dateOrder, termID, trade.OrderAmounts{
		Untaxed: payload.Amounts.TotalExclTax,
		Tax:     payload.Amounts.TotalVAT,
		Total:   payload.Amounts.TotalInclTax,
	})
	if err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// createLines appends order lines, skipping any line whose (order, product
// code) pair already exists. Sequence starts at 10 in payload order.
func (s *OrderImportService) createLines(ctx context.Context, orderID uuid.UUID, entries []LineEntry) error {
	for i, entry := range entries {
		_, err := s.lines.FindByOrderAndProductCode(ctx, orderID, entry.Reference)
		if err == nil {
			continue // existing lines are never touched
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		product, err := s.getOrCreateProduct(ctx, entry)
		if err != nil {
			return err
		}
		uomID, err := s.unitOfMeasure(ctx, entry.Unit)
		if err != nil {
			return err
		}

		line, err := trade.NewOrderLine(orderID, product.ID, uomID, entry.Label,
			entry.Quantity, entry.UnitPrice, entry.DiscountPercent, entry.TotalExclTax,
			trade.FirstLineSequence+i)
		if err != nil {
			return err
		}
		if err := s.lines.Save(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

// createSessions appends training sessions, skipping any session whose
// (order, date, start, end) key already exists.
func (s *OrderImportService) createSessions(ctx context.Context, orderID uuid.UUID, t *Training) error {
	trainer, err := s.getOrCreateTrainer(ctx, t.Trainer)
	if err != nil {
		return err
	}

	for _, entry := range t.Sessions {
		startTime, endTime := entry.StartTimes[0], entry.EndTimes[0]

		_, err := s.sessions.FindBySchedule(ctx, orderID, entry.Date, startTime, endTime)
		if err == nil {
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		session, err := training.NewSession(orderID, trainer.ID, t.Title, entry.Date, startTime, endTime, t.Location, t.Modality)
		if err != nil {
			return err
		}
		if err := s.sessions.Save(ctx, session); err != nil {
			return err
		}
	}
	return nil
}

// getOrCreateProduct resolves a product by its reference code, creating a
// service product on first sight. An existing product is never price-updated.
func (s *OrderImportService) getOrCreateProduct(ctx context.Context, entry LineEntry) (*catalog.Product, error) {
	found, err := s.products.FindByCode(ctx, entry.Reference)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	uomID, err := s.unitOfMeasure(ctx, entry.Unit)
	if err != nil {
		return nil, err
	}
	product, err := catalog.NewServiceProduct(entry.Reference, entry.Label, entry.UnitPrice, uomID)
	if err != nil {
		return nil, err
	}
	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// getOrCreateTrainer resolves a trainer partner by name
func (s *OrderImportService) getOrCreateTrainer(ctx context.Context, name string) (*partner.Partner, error) {
	found, err := s.partners.FindTrainerByName(ctx, name)
	if err == nil {
		return found, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	trainer, err := partner.NewTrainer(name)
	if err != nil {
		return nil, err
	}
	if err := s.partners.Save(ctx, trainer); err != nil {
		return nil, err
	}
	return trainer, nil
}

// unitOfMeasure resolves a unit by name, degrading to the canonical default
// unit with a warning. The fallback itself failing is an error.
func (s *OrderImportService) unitOfMeasure(ctx context.Context, name string) (uuid.UUID, error) {
	if name != "" {
		u, err := s.uoms.FindByName(ctx, name)
		if err == nil {
			return u.ID, nil
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return uuid.Nil, err
		}
		s.logger.Warn("unit of measure not found, using default", zap.String("unit", name))
	}

	u, err := s.uoms.FindByName(ctx, catalog.DefaultUnitName)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return uuid.Nil, shared.NewDomainError("UOM_NOT_FOUND", "Default unit of measure is missing")
		}
		return uuid.Nil, err
	}
	return u.ID, nil
}

// paymentTerm resolves a payment term by name, degrading to the first
// available term with a warning, or to no term at all.
func (s *OrderImportService) paymentTerm(ctx context.Context, name string) (*uuid.UUID, error) {
	if name != "" {
		t, err := s.terms.FindByName(ctx, name)
		if err == nil {
			return &t.ID, nil
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		s.logger.Warn("payment term not found, using first available", zap.String("payment_term", name))
	}

	t, err := s.terms.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t.ID, nil
}
