package doctor

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	// List returns all doctors ordered by name ascending.
	List(ctx context.Context) ([]*Doctor, error)
	Update(ctx context.Context, d *Doctor) error
	// Delete removes the doctor and every mapping that references it, in one
	// transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	// EmailInUse reports whether another doctor (excluding excludeID) already
	// uses the given email.
	EmailInUse(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	// LicenseInUse reports whether another doctor (excluding excludeID) already
	// uses the given license number.
	LicenseInUse(ctx context.Context, license string, excludeID uuid.UUID) (bool, error)
}
