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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Collection names accepted by the batch mapping flow
const (
	CollectionPartner = "res_partner"
	CollectionContact = "res_partner_contact"
	CollectionProduct = "product_product"
	CollectionUom     = "uom_uom"
	CollectionOrder   = "sale_order"
	CollectionLine    = "sale_order_line"
)

// BatchPayload maps collection names to ordered record sequences. Later
// collections reference earlier ones by textual placeholders equal to the
// earlier collection's natural key.
type BatchPayload struct {
	Partners []PartnerRecord `json:"res_partner"`
	Contacts []ContactRecord `json:"res_partner_contact"`
	Products []ProductRecord `json:"product_product"`
	Units    []UomRecord     `json:"uom_uom"`
	Order    *OrderRecord    `json:"sale_order"`
	Lines    []LineRecord    `json:"sale_order_line"`
}

// PartnerRecord is a company partner in the batch flow, keyed by (name, type)
type PartnerRecord struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	CompanyType string `json:"company_type"`
	VAT         string `json:"vat"`
	Street      string `json:"street"`
	Zip         string `json:"zip"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// ContactRecord is a partner contact; ParentID is a placeholder naming a
// partner from the res_partner collection.
type ContactRecord struct {
	Name     string `json:"name"`
	ParentID string `json:"parent_id"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ProductRecord is a catalog product keyed by its internal reference
type ProductRecord struct {
	DefaultCode string          `json:"default_code"`
	Name        string          `json:"name"`
	ListPrice   decimal.Decimal `json:"list_price"`
}

// UomRecord is a unit of measure keyed by name
type UomRecord struct {
	Name string `json:"name"`
}

// OrderRecord is the sales order of the batch; PartnerID may be a placeholder
// naming a partner from the res_partner collection.
type OrderRecord struct {
	Name           string          `json:"name"`
	PartnerID      string          `json:"partner_id"`
	ClientOrderRef string          `json:"client_order_ref"`
	DateOrder      string          `json:"date_order"`
	AmountUntaxed  decimal.Decimal `json:"amount_untaxed"`
	AmountTax      decimal.Decimal `json:"amount_tax"`
	AmountTotal    decimal.Decimal `json:"amount_total"`
}

// LineRecord is an order line; OrderID, ProductID and ProductUom may be
// placeholders resolved against the collections processed before it.
type LineRecord struct {
	OrderID       string          `json:"order_id"`
	ProductID     string          `json:"product_id"`
	Name          string          `json:"name"`
	ProductUomQty decimal.Decimal `json:"product_uom_qty"`
	ProductUom    string          `json:"product_uom"`
	PriceUnit     decimal.Decimal `json:"price_unit"`
	Discount      decimal.Decimal `json:"discount"`
	Sequence      int             `json:"sequence"`
}

// BatchResult aggregates every outcome of a batch import. Success flips to
// false on the first record error, but processing always continues.
type BatchResult struct {
	Success bool                   `json:"success"`
	Errors  []string               `json:"errors"`
	Created map[string][]uuid.UUID `json:"created"`
	Updated map[string][]uuid.UUID `json:"updated"`
}

func newBatchResult() *BatchResult {
	return &BatchResult{
		Success: true,
		Errors:  []string{},
		Created: map[string][]uuid.UUID{},
		Updated: map[string][]uuid.UUID{},
	}
}

func (r *BatchResult) created(collection string, id uuid.UUID) {
	r.Created[collection] = append(r.Created[collection], id)
}

func (r *BatchResult) updated(collection string, id uuid.UUID) {
	r.Updated[collection] = append(r.Updated[collection], id)
}

func (r *BatchResult) fail(err error) {
	r.Success = false
	r.Errors = append(r.Errors, err.Error())
}

// BatchImportService imports named record collections with cross-collection
// placeholder substitution. Every collection uses match-or-overwrite upsert
// semantics; already-applied mutations are kept when a later record fails.
type BatchImportService struct {
	partners partner.PartnerRepository
	products catalog.ProductRepository
	uoms     catalog.UnitOfMeasureRepository
	orders   trade.SalesOrderRepository
	lines    trade.OrderLineRepository
	logger   *zap.Logger
}

// NewBatchImportService creates a new BatchImportService
func NewBatchImportService(
	partners partner.PartnerRepository,
	products catalog.ProductRepository,
	uoms catalog.UnitOfMeasureRepository,
	orders trade.SalesOrderRepository,
	lines trade.OrderLineRepository,
	logger *zap.Logger,
) *BatchImportService {
	return &BatchImportService{
		partners: partners,
		products: products,
		uoms:     uoms,
		orders:   orders,
		lines:    lines,
		logger:   logger.Named("batch_import"),
	}
}

// Import processes the collections in dependency order, building placeholder
// maps incrementally as each collection is processed.
func (s *BatchImportService) Import(ctx context.Context, payload *BatchPayload) *BatchResult {
	result := newBatchResult()

	partnerMap := s.importPartners(ctx, payload.Partners, result)
	s.importContacts(ctx, payload.Contacts, partnerMap, result)
	productMap := s.importProducts(ctx, payload.Products, result)
	uomMap := s.importUnits(ctx, payload.Units, result)
	orderID := s.importOrder(ctx, payload.Order, partnerMap, result)
	s.importLines(ctx, payload.Lines, orderID, productMap, uomMap, result)

	if !result.Success {
		s.logger.Warn("batch import finished with errors", zap.Int("error_count", len(result.Errors)))
	}
	return result
}

func (s *BatchImportService) importPartners(ctx context.Context, records []PartnerRecord, result *BatchResult) map[string]uuid.UUID {
	partnerMap := make(map[string]uuid.UUID, len(records))

	for _, record := range records {
		partnerType := partner.PartnerType(record.Type)
		if record.Type == "" {
			partnerType = partner.PartnerTypeContact
		}

		existing, err := s.partners.FindByNameAndType(ctx, record.Name, partnerType, nil)
		switch {
		case err == nil:
			applyPartnerRecord(existing, record)
			existing.IncrementVersion()
			if err := s.partners.Save(ctx, existing); err != nil {
				result.fail(fmt.Errorf("%s %q: %w", CollectionPartner, record.Name, err))
				continue
			}
			result.updated(CollectionPartner, existing.ID)
			partnerMap[record.Name] = existing.ID

		case errors.Is(err, shared.ErrNotFound):
			created := &partner.Partner{
				BaseAggregateRoot: shared.NewBaseAggregateRoot(),
				Type:              partnerType,
				CompanyType:       partner.CompanyTypeCompany,
				Active:            true,
			}
			if record.CompanyType != "" {
				created.CompanyType = partner.CompanyType(record.CompanyType)
			}
			applyPartnerRecord(created, record)
			if created.Name == "" {
				result.fail(fmt.Errorf("%s: partner name is required", CollectionPartner))
				continue
			}
			if err := s.partners.Save(ctx, created); err != nil {
				result.fail(fmt.Errorf("%s %q: %w", CollectionPartner, record.Name, err))
				continue
			}
			result.created(CollectionPartner, created.ID)
			partnerMap[record.Name] = created.ID

		default:
			result.fail(fmt.Errorf("%s %q: %w", CollectionPartner, record.Name, err))
		}
	}
	return partnerMap
}

func applyPartnerRecord(p *partner.Partner, record PartnerRecord) {
	p.Name = record.Name
	p.VAT = record.VAT
	p.Street = record.Street
	p.Zip = record.Zip
	p.City = record.City
	p.Country = record.Country
	p.Email = record.Email
	p.Phone = record.Phone
}

func (s *BatchImportService) importContacts(ctx context.Context, records []ContactRecord, partnerMap map[string]uuid.UUID, result *BatchResult) {
	for _, record := range records {
		var parentID *uuid.UUID
		if record.ParentID != "" {
			id, ok := resolvePlaceholder(record.ParentID, partnerMap)
			if !ok {
				result.fail(fmt.Errorf("%s %q: unresolved parent %q", CollectionContact, record.Name, record.ParentID))
				continue
			}
			parentID = &id
		}

		existing, err := s.partners.FindByNameAndType(ctx, record.Name, partner.PartnerTypeContact, parentID)
		switch {
		case err == nil:
			existing.Email = record.Email
			existing.Phone = record.Phone
			existing.ParentID = parentID
			existing.IncrementVersion()
			if err := s.partners.Save(ctx, existing); err != nil {
				result.fail(fmt.Errorf("%s %q: %w", CollectionContact, record.Name, err))
				continue
			}
			result.updated(CollectionContact, existing.ID)

		case errors.Is(err, shared.ErrNotFound):
			created, err := partner.NewContact(record.Name, parentID)
			if err != nil {
				result.fail(fmt.Errorf("%s %q: %w", CollectionContact, record.Name, err))
				continue
			}
			created.Email = record.Email
			created.Phone = record.Phone
			if err := s.partners.Save(ctx, created); err != nil {
				result.fail(fmt.Errorf("%s %q: %w", CollectionContact, record.Name, err))
				continue
			}
			result.created(CollectionContact, created.ID)

		default:
			result.fail(fmt.Errorf("%s %q: %w", CollectionContact, record.Name, err))
		}
	}
}

func (s *BatchImportService) importProducts(ctx context.Context, records []ProductRecord, result *BatchResult) map[string]uuid.UUID {
	productMap := make(map[string]uuid.UUID, len(records))

	for _, record := range records {
		existing, err := s.products.FindByCode(ctx, record.DefaultCode)
		switch {
		case err == nil:
			if err := existing.ApplyFields(record.Name, record.ListPrice, uuid.Nil); err != nil {
				result.fail(fmt.Errorf("%s %q: %w", CollectionProduct, record.DefaultCode, err))
				continue
			}
			if err := s.products.Save(ctx, existing); err != nil {
				result.fail(fmt.Errorf("%s %q: %w", CollectionProduct, record.DefaultCode, err))
				continue
			}
			result.updated(CollectionProduct, existing.ID)
			productMap[record.DefaultCode] = existing.ID

		case errors.Is(err, shared.ErrNotFound):
			uomID, err := s.defaultUnit(ctx)
			if err != nil {
				result.fail(fmt.Errorf("%s %q: %w", CollectionProduct, record.DefaultCode, err))
				continue
			}
			created, err := catalog.NewServiceProduct(record.DefaultCode, record.Name, record.ListPrice, uomID)
			if err != nil {
				result.fail(fmt.Errorf("%s %q: %w", CollectionProduct, record.DefaultCode, err))
				continue
			}
			if err := s.products.Save(ctx, created); err != nil {
				result.fail(fmt.Errorf("%s %q: %w", CollectionProduct, record.DefaultCode, err))
				continue
			}
			result.created(CollectionProduct, created.ID)
			productMap[record.DefaultCode] = created.ID

		default:
			result.fail(fmt.Errorf("%s %q: %w", CollectionProduct, record.DefaultCode, err))
		}
	}
	return productMap
}

func (s *BatchImportService) importUnits(ctx context.Context, records []UomRecord, result *BatchResult) map[string]uuid.UUID {
	uomMap := make(map[string]uuid.UUID, len(records))

	for _, record := range records {
		existing, err := s.uoms.FindByName(ctx, record.Name)
		switch {
		case err == nil:
			result.updated(CollectionUom, existing.ID)
			uomMap[record.Name] = existing.ID

		case errors.Is(err, shared.ErrNotFound):
			created, err := catalog.NewUnitOfMeasure(record.Name)
			if err != nil {
				result.fail(fmt.Errorf("%s %q: %w", CollectionUom, record.Name, err))
				continue
			}
			if err := s.uoms.Save(ctx, created); err != nil {
				result.fail(fmt.Errorf("%s %q: %w", CollectionUom, record.Name, err))
				continue
			}
			result.created(CollectionUom, created.ID)
			uomMap[record.Name] = created.ID

		default:
			result.fail(fmt.Errorf("%s %q: %w", CollectionUom, record.Name, err))
		}
	}
	return uomMap
}

func (s *BatchImportService) importOrder(ctx context.Context, record *OrderRecord, partnerMap map[string]uuid.UUID, result *BatchResult) uuid.UUID {
	if record == nil {
		return uuid.Nil
	}

	partnerID, ok := resolvePlaceholder(record.PartnerID, partnerMap)
	if !ok {
		result.fail(fmt.Errorf("%s %q: unresolved partner %q", CollectionOrder, record.Name, record.PartnerID))
		return uuid.Nil
	}

	dateOrder, err := parseBatchDate(record.DateOrder)
	if err != nil {
		result.fail(fmt.Errorf("%s %q: %w", CollectionOrder, record.Name, err))
		return uuid.Nil
	}

	amounts := trade.OrderAmounts{
		Untaxed: record.AmountUntaxed,
		Tax:     record.AmountTax,
		Total:   record.AmountTotal,
	}

	existing, err := s.orders.FindByName(ctx, record.Name)
	switch {
	case err == nil:
		if err := existing.ApplyFields(partnerID, dateOrder, amounts); err != nil {
			result.fail(fmt.Errorf("%s %q: %w", CollectionOrder, record.Name, err))
			return uuid.Nil
		}
		if err := s.orders.Save(ctx, existing); err != nil {
			result.fail(fmt.Errorf("%s %q: %w", CollectionOrder, record.Name, err))
			return uuid.Nil
		}
		result.updated(CollectionOrder, existing.ID)
		return existing.ID

	case errors.Is(err, shared.ErrNotFound):
		ref := record.ClientOrderRef
		if ref == "" {
			ref = record.Name
		}
		created, err := trade.NewSalesOrder(partnerID, ref, dateOrder, nil, amounts)
		if err != nil {
			result.fail(fmt.Errorf("%s %q: %w", CollectionOrder, record.Name, err))
			return uuid.Nil
		}
		created.Name = record.Name
		if err := s.orders.Save(ctx, created); err != nil {
			result.fail(fmt.Errorf("%s %q: %w", CollectionOrder, record.Name, err))
			return uuid.Nil
		}
		result.created(CollectionOrder, created.ID)
		return created.ID

	default:
		result.fail(fmt.Errorf("%s %q: %w", CollectionOrder, record.Name, err))
		return uuid.Nil
	}
}

func (s *BatchImportService) importLines(ctx context.Context, records []LineRecord, orderID uuid.UUID, productMap, uomMap map[string]uuid.UUID, result *BatchResult) {
	for _, record := range records {
		if orderID == uuid.Nil {
			result.fail(fmt.Errorf("%s %q: no order to attach to", CollectionLine, record.Name))
			continue
		}
		productID, ok := resolvePlaceholder(record.ProductID, productMap)
		if !ok {
			result.fail(fmt.Errorf("%s %q: unresolved product %q", CollectionLine, record.Name, record.ProductID))
			continue
		}

		uomID := uuid.Nil
		if record.ProductUom != "" {
			uomID, ok = resolvePlaceholder(record.ProductUom, uomMap)
			if !ok {
				var err error
				uomID, err = s.defaultUnit(ctx)
				if err != nil {
					result.fail(fmt.Errorf("%s %q: %w", CollectionLine, record.Name, err))
					continue
				}
			}
		}

		existing, err := s.lines.FindByOrderProductName(ctx, orderID, productID, record.Name)
		switch {
		case err == nil:
			if err := existing.ApplyFields(record.ProductUomQty, record.PriceUnit, record.Discount, uomID); err != nil {
				result.fail(fmt.Errorf("%s %q: %w", CollectionLine, record.Name, err))
				continue
			}
			if err := s.lines.Save(ctx, existing); err != nil {
				result.fail(fmt.Errorf("%s %q: %w", CollectionLine, record.Name, err))
				continue
			}
			result.updated(CollectionLine, existing.ID)

		case errors.Is(err, shared.ErrNotFound):
			if uomID == uuid.Nil {
				uomID, err = s.defaultUnit(ctx)
				if err != nil {
					result.fail(fmt.Errorf("%s %q: %w", CollectionLine, record.Name, err))
					continue
				}
			}
			sequence := record.Sequence
			if sequence == 0 {
				sequence = trade.FirstLineSequence
			}
			subtotal := record.ProductUomQty.Mul(record.PriceUnit)
			created, err := trade.NewOrderLine(orderID, productID, uomID, record.Name,
				record.ProductUomQty, record.PriceUnit, record.Discount, subtotal, sequence)
			if err != nil {
				result.fail(fmt.Errorf("%s %q: %w", CollectionLine, record.Name, err))
				continue
			}
			if err := s.lines.Save(ctx, created); err != nil {
				result.fail(fmt.Errorf("%s %q: %w", CollectionLine, record.Name, err))
				continue
			}
			result.created(CollectionLine, created.ID)

		default:
			result.fail(fmt.Errorf("%s %q: %w", CollectionLine, record.Name, err))
		}
	}
}

// defaultUnit finds or creates the canonical fallback unit of measure
func (s *BatchImportService) defaultUnit(ctx context.Context) (uuid.UUID, error) {
	existing, err := s.uoms.FindByName(ctx, catalog.DefaultUnitName)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return uuid.Nil, err
	}
	created, err := catalog.NewUnitOfMeasure(catalog.DefaultUnitName)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.uoms.Save(ctx, created); err != nil {
		return uuid.Nil, err
	}
	return created.ID, nil
}

// resolvePlaceholder maps a textual placeholder to a previously imported
// record's identifier, accepting a literal UUID as well.
func resolvePlaceholder(value string, m map[string]uuid.UUID) (uuid.UUID, bool) {
	if id, ok := m[value]; ok {
		return id, true
	}
	if id, err := uuid.Parse(value); err == nil {
		return id, true
	}
	return uuid.Nil, false
}

func parseBatchDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{OrderDateLayout, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid order date %q", value)
}
