package partner

import (
	"context"

	"github.com/google/uuid"
)

// PartnerRepository defines the persistence contract for partners.
// Finders return shared.ErrNotFound when no record matches.
type PartnerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Partner, error)
	FindBySIREN(ctx context.Context, siren string) (*Partner, error)
	FindBySIRET(ctx context.Context, siret string) (*Partner, error)
	FindByVAT(ctx context.Context, vat string) (*Partner, error)
	FindTrainerByName(ctx context.Context, name string) (*Partner, error)
	// FindByNameAndType matches partners by display name and contact type;
	// parentID narrows the match to contacts of a given company when non-nil.
	FindByNameAndType(ctx context.Context, name string, partnerType PartnerType, parentID *uuid.UUID) (*Partner, error)
	Save(ctx context.Context, p *Partner) error
}
