package orderimport

import (
	"github.com/shopspring/decimal"
)

// ValidationResult is the outcome of a structural payload check
type ValidationResult struct {
	Valid  bool
	Reason string
}

func invalid(reason string) ValidationResult {
	return ValidationResult{Valid: false, Reason: reason}
}

// ValidatePayload performs the structural and semantic checks of an incoming
// order document, short-circuiting at the first failure. It has no side
// effects and touches no storage.
func ValidatePayload(p *OrderPayload) ValidationResult {
	if p == nil || p.Document == nil || p.Customer == nil || p.OrderLines == nil || p.Amounts == nil {
		return invalid("Missing required fields")
	}

	if p.Document.OrderNumber == "" {
		return invalid("Missing order number")
	}
	if p.Document.OrderDate == "" {
		return invalid("Missing order date")
	}

	if p.Customer.CompanyName == "" {
		return invalid("Missing company name")
	}
	if p.Customer.Siren == "" {
		return invalid("Missing SIREN")
	}

	if len(p.OrderLines) == 0 {
		return invalid("No order lines")
	}
	for _, line := range p.OrderLines {
		if line.Reference == "" {
			return invalid("Missing product reference")
		}
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			return invalid("Invalid quantity")
		}
		if line.UnitPrice.LessThanOrEqual(decimal.Zero) {
			return invalid("Invalid unit price")
		}
	}

	if p.Amounts.TotalExclTax.IsZero() {
		return invalid("Missing total amount")
	}

	if p.Training != nil {
		if len(p.Training.Sessions) == 0 {
			return invalid("No training sessions defined")
		}
		for _, session := range p.Training.Sessions {
			if session.Date == "" {
				return invalid("Missing session date")
			}
			if len(session.StartTimes) == 0 || len(session.EndTimes) == 0 {
				return invalid("Missing session times")
			}
		}
	}

	return ValidationResult{Valid: true}
}
