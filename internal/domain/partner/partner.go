package partner

import (
	"strings"

	"github.com/erp/order-import/internal/domain/shared"
	"github.com/google/uuid"
)

// CompanyType distinguishes company partners from individual persons
type CompanyType string

const (
	CompanyTypeCompany CompanyType = "company"
	CompanyTypePerson  CompanyType = "person"
)

// PartnerType is the address/contact classification of a partner record
type PartnerType string

const (
	PartnerTypeContact PartnerType = "contact"
)

// Partner represents a business partner: a customer company, one of its
// contacts, or a trainer. It is the aggregate root for partner operations.
type Partner struct {
	shared.BaseAggregateRoot
	Name         string      `gorm:"type:varchar(200);not null;index"`
	Type         PartnerType `gorm:"type:varchar(20);not null;default:'contact'"`
	CompanyType  CompanyType `gorm:"type:varchar(20);not null;default:'company'"`
	SIREN        string      `gorm:"column:siren;type:varchar(20);index"`
	SIRET        string      `gorm:"column:siret;type:varchar(20);index"`
	VAT          string      `gorm:"column:vat;type:varchar(30);index"`
	Street       string      `gorm:"type:varchar(200)"`
	Zip          string      `gorm:"type:varchar(20)"`
	City         string      `gorm:"type:varchar(100)"`
	Country      string      `gorm:"type:varchar(100)"`
	Email        string      `gorm:"type:varchar(200)"`
	Phone        string      `gorm:"type:varchar(50)"`
	ParentID     *uuid.UUID  `gorm:"type:uuid;index"` // parent company for contacts
	CustomerRank int         `gorm:"not null;default:0"`
	IsTrainer    bool        `gorm:"not null;default:false"`
	Active       bool        `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Partner) TableName() string {
	return "partners"
}

// NormalizeSIREN strips spaces from a SIREN/SIRET identifier
func NormalizeSIREN(v string) string {
	return strings.ReplaceAll(v, " ", "")
}

// CustomerFields is the authoritative field set applied on customer upsert
type CustomerFields struct {
	Name    string
	SIREN   string
	SIRET   string
	VAT     string
	Street  string
	Zip     string
	City    string
	Country string
	Email   string
	Phone   string
}

// NewCustomer creates a new customer company partner
func NewCustomer(fields CustomerFields) (*Partner, error) {
	if fields.Name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Partner name cannot be empty")
	}
	if fields.SIREN == "" {
		return nil, shared.NewDomainError("INVALID_SIREN", "Customer SIREN cannot be empty")
	}

	p := &Partner{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Type:              PartnerTypeContact,
		CompanyType:       CompanyTypeCompany,
		CustomerRank:      1,
		Active:            true,
	}
	p.applyCustomerFields(fields)
	return p, nil
}

// ApplyCustomerFields overwrites the partner's customer fields with the
// incoming set. The payload is treated as authoritative on every delivery.
func (p *Partner) ApplyCustomerFields(fields CustomerFields) error {
	if fields.Name == "" {
		return shared.NewDomainError("INVALID_NAME", "Partner name cannot be empty")
	}
	p.applyCustomerFields(fields)
	p.CustomerRank = 1
	p.IncrementVersion()
	return nil
}

func (p *Partner) applyCustomerFields(fields CustomerFields) {
	p.Name = fields.Name
	p.SIREN = NormalizeSIREN(fields.SIREN)
	p.SIRET = NormalizeSIREN(fields.SIRET)
	p.VAT = fields.VAT
	p.Street = fields.Street
	p.Zip = fields.Zip
	p.City = fields.City
	p.Country = fields.Country
	p.Email = fields.Email
	p.Phone = fields.Phone
}

// NewTrainer creates a new trainer partner (an individual person)
func NewTrainer(name string) (*Partner, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Trainer name cannot be empty")
	}
	return &Partner{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Type:              PartnerTypeContact,
		CompanyType:       CompanyTypePerson,
		IsTrainer:         true,
		Active:            true,
	}, nil
}

// NewContact creates a contact partner attached to a parent company
func NewContact(name string, parentID *uuid.UUID) (*Partner, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Contact name cannot be empty")
	}
	return &Partner{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Type:              PartnerTypeContact,
		CompanyType:       CompanyTypePerson,
		ParentID:          parentID,
		Active:            true,
	}, nil
}
