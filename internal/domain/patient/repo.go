package patient

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists patients. Every read and mutation except Create takes
// the requesting user and matches it against created_by, so a patient owned
// by someone else behaves exactly like one that does not exist.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetOwned(ctx context.Context, user, id uuid.UUID) (*Patient, error)
	// ListOwned returns the user's patients in insertion order.
	ListOwned(ctx context.Context, user uuid.UUID) ([]*Patient, error)
	Update(ctx context.Context, p *Patient) error
	// DeleteOwned removes the patient and every mapping that references it,
	// in one transaction.
	DeleteOwned(ctx context.Context, user, id uuid.UUID) error
	// EmailInUse reports whether the user already has another patient
	// (excluding excludeID) with the given email. Emails are unique per
	// owning user, not globally.
	EmailInUse(ctx context.Context, user uuid.UUID, email string, excludeID uuid.UUID) (bool, error)
}
