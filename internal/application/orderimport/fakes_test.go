package orderimport

import (
	"context"

	"github.com/erp/order-import/internal/domain/catalog"
	"github.com/erp/order-import/internal/domain/partner"
	"github.com/erp/order-import/internal/domain/shared"
	"github.com/erp/order-import/internal/domain/trade"
	"github.com/erp/order-import/internal/domain/training"
	"github.com/google/uuid"
)

// In-memory repository fakes. Finders mirror the persistence contract:
// shared.ErrNotFound on miss, injected errors via the err fields.

type fakePartnerRepo struct {
	partners []*partner.Partner
	findErr  error
	saveErr  error
}

func (r *fakePartnerRepo) find(match func(*partner.Partner) bool) (*partner.Partner, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, p := range r.partners {
		if match(p) {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakePartnerRepo) FindByID(_ context.Context, id uuid.UUID) (*partner.Partner, error) {
	return r.find(func(p *partner.Partner) bool { return p.ID == id })
}

func (r *fakePartnerRepo) FindBySIREN(_ context.Context, siren string) (*partner.Partner, error) {
	return r.find(func(p *partner.Partner) bool { return siren != "" && p.SIREN == siren })
}

func (r *fakePartnerRepo) FindBySIRET(_ context.Context, siret string) (*partner.Partner, error) {
	return r.find(func(p *partner.Partner) bool { return siret != "" && p.SIRET == siret })
}

func (r *fakePartnerRepo) FindByVAT(_ context.Context, vat string) (*partner.Partner, error) {
	return r.find(func(p *partner.Partner) bool { return vat != "" && p.VAT == vat })
}

func (r *fakePartnerRepo) FindTrainerByName(_ context.Context, name string) (*partner.Partner, error) {
	return r.find(func(p *partner.Partner) bool { return p.IsTrainer && p.Name == name })
}

func (r *fakePartnerRepo) FindByNameAndType(_ context.Context, name string, partnerType partner.PartnerType, parentID *uuid.UUID) (*partner.Partner, error) {
	return r.find(func(p *partner.Partner) bool {
		if p.Name != name || p.Type != partnerType {
			return false
		}
		if parentID == nil {
			return p.ParentID == nil
		}
		return p.ParentID != nil && *p.ParentID == *parentID
	})
}

func (r *fakePartnerRepo) Save(_ context.Context, p *partner.Partner) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	for i, existing := range r.partners {
		if existing.ID == p.ID {
			r.partners[i] = p
			return nil
		}
	}
	r.partners = append(r.partners, p)
	return nil
}

type fakeProductRepo struct {
	products []*catalog.Product
	saveErr  error
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) FindByCode(_ context.Context, code string) (*catalog.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeProductRepo) Save(_ context.Context, p *catalog.Product) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	for i, existing := range r.products {
		if existing.ID == p.ID {
			r.products[i] = p
			return nil
		}
	}
	r.products = append(r.products, p)
	return nil
}

type fakeUomRepo struct {
	units []*catalog.UnitOfMeasure
}

func (r *fakeUomRepo) FindByName(_ context.Context, name string) (*catalog.UnitOfMeasure, error) {
	for _, u := range r.units {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeUomRepo) Save(_ context.Context, u *catalog.UnitOfMeasure) error {
	r.units = append(r.units, u)
	return nil
}

type fakeOrderRepo struct {
	orders  []*trade.SalesOrder
	findErr error
	saveErr error
}

func (r *fakeOrderRepo) find(match func(*trade.SalesOrder) bool) (*trade.SalesOrder, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, o := range r.orders {
		if match(o) {
			return o, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*trade.SalesOrder, error) {
	return r.find(func(o *trade.SalesOrder) bool { return o.ID == id })
}

func (r *fakeOrderRepo) FindByClientOrderRef(_ context.Context, ref string) (*trade.SalesOrder, error) {
	return r.find(func(o *trade.SalesOrder) bool { return o.ClientOrderRef == ref })
}

func (r *fakeOrderRepo) FindByName(_ context.Context, name string) (*trade.SalesOrder, error) {
	return r.find(func(o *trade.SalesOrder) bool { return o.Name == name })
}

func (r *fakeOrderRepo) Save(_ context.Context, o *trade.SalesOrder) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	for i, existing := range r.orders {
		if existing.ID == o.ID {
			r.orders[i] = o
			return nil
		}
	}
	r.orders = append(r.orders, o)
	return nil
}

// fakeLineRepo resolves product codes through the product repo, the way the
// SQL implementation joins lines to products.
type fakeLineRepo struct {
	lines    []*trade.OrderLine
	products *fakeProductRepo
	saveErr  error
}

func (r *fakeLineRepo) FindByOrderAndProductCode(ctx context.Context, orderID uuid.UUID, productCode string) (*trade.OrderLine, error) {
	product, err := r.products.FindByCode(ctx, productCode)
	if err != nil {
		return nil, shared.ErrNotFound
	}
	for _, l := range r.lines {
		if l.OrderID == orderID && l.ProductID == product.ID {
			return l, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeLineRepo) FindByOrderProductName(_ context.Context, orderID, productID uuid.UUID, name string) (*trade.OrderLine, error) {
	for _, l := range r.lines {
		if l.OrderID == orderID && l.ProductID == productID && l.Name == name {
			return l, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeLineRepo) ListByOrder(_ context.Context, orderID uuid.UUID) ([]trade.OrderLine, error) {
	var out []trade.OrderLine
	for _, l := range r.lines {
		if l.OrderID == orderID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeLineRepo) Save(_ context.Context, l *trade.OrderLine) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	for i, existing := range r.lines {
		if existing.ID == l.ID {
			r.lines[i] = l
			return nil
		}
	}
	r.lines = append(r.lines, l)
	return nil
}

type fakeTermRepo struct {
	terms []*trade.PaymentTerm
}

func (r *fakeTermRepo) FindByName(_ context.Context, name string) (*trade.PaymentTerm, error) {
	for _, t := range r.terms {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeTermRepo) FindFirst(_ context.Context) (*trade.PaymentTerm, error) {
	if len(r.terms) == 0 {
		return nil, shared.ErrNotFound
	}
	return r.terms[0], nil
}

func (r *fakeTermRepo) Save(_ context.Context, t *trade.PaymentTerm) error {
	r.terms = append(r.terms, t)
	return nil
}

type fakeSessionRepo struct {
	sessions []*training.Session
	saveErr  error
}

func (r *fakeSessionRepo) FindBySchedule(_ context.Context, orderID uuid.UUID, date, startTime, endTime string) (*training.Session, error) {
	for _, s := range r.sessions {
		if s.OrderID == orderID && s.Date == date && s.StartTime == startTime && s.EndTime == endTime {
			return s, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeSessionRepo) ListByOrder(_ context.Context, orderID uuid.UUID) ([]training.Session, error) {
	var out []training.Session
	for _, s := range r.sessions {
		if s.OrderID == orderID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) Save(_ context.Context, s *training.Session) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.sessions = append(r.sessions, s)
	return nil
}
