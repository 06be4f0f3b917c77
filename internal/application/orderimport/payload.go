package orderimport

import (
	"github.com/shopspring/decimal"
)

// OrderDateLayout is the expected format of document.orderDate
const OrderDateLayout = "2006-01-02T15:04:05Z"

// Envelope is the outer wrapper the order payload arrives in: a list whose
// first element carries the document under message.content.
type Envelope []EnvelopeItem

// EnvelopeItem is one element of the delivery envelope
type EnvelopeItem struct {
	Message EnvelopeMessage `json:"message"`
}

// EnvelopeMessage wraps the order payload
type EnvelopeMessage struct {
	Content OrderPayload `json:"content"`
}

// OrderPayload is the imported sales-order document
type OrderPayload struct {
	Document     *Document   `json:"document"`
	Customer     *Customer   `json:"customer"`
	OrderLines   []LineEntry `json:"orderLines"`
	PaymentTerms string      `json:"paymentTerms"`
	Amounts      *Amounts    `json:"amounts"`
	Training     *Training   `json:"training,omitempty"`
}

// Document identifies the order itself
type Document struct {
	OrderNumber string `json:"orderNumber"`
	OrderDate   string `json:"orderDate"` // ISO 8601, Z-suffixed
}

// Customer carries the buyer's identity and billing details
type Customer struct {
	CompanyName  string    `json:"companyName"`
	Siren        string    `json:"siren"`
	Siret        []string  `json:"siret"`
	TVA          string    `json:"tva"`
	Addresses    []Address `json:"addresses"`
	BillingEmail string    `json:"billingEmail"`
	Contact      *Contact  `json:"contact,omitempty"`
}

// Address is a postal address entry; the first one is used for the partner
type Address struct {
	AddressLine string `json:"addressLine"`
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// Contact carries secondary contact details
type Contact struct {
	Phone string `json:"phone"`
}

// LineEntry is one order line of the document
type LineEntry struct {
	Reference       string          `json:"reference"` // product code
	Label           string          `json:"label"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TotalExclTax    decimal.Decimal `json:"totalExclTax"`
}

// Amounts carries the document's order totals
type Amounts struct {
	TotalExclTax decimal.Decimal `json:"totalExclTax"`
	TotalVAT     decimal.Decimal `json:"totalVAT"`
	TotalInclTax decimal.Decimal `json:"totalInclTax"`
}

// Training is the optional training group of the document
type Training struct {
	Title    string         `json:"title"`
	Trainer  string         `json:"trainer"`
	Location string         `json:"location"`
	Modality string         `json:"modality"`
	Sessions []SessionEntry `json:"sessions"`
}

// SessionEntry is one scheduled session; only the first start/end time is used
type SessionEntry struct {
	Date       string   `json:"date"` // YYYY-MM-DD
	StartTimes []string `json:"startTimes"`
	EndTimes   []string `json:"endTimes"`
}
