package mapping

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, m *Mapping) error
	// ListForOwner returns the active mappings whose patient was created by
	// the given user, newest assignment first.
	ListForOwner(ctx context.Context, user uuid.UUID) ([]*Mapping, error)
	// ListActiveForPatient returns the active mappings for one patient,
	// newest assignment first. Ownership is checked by the caller.
	ListActiveForPatient(ctx context.Context, patientID uuid.UUID) ([]*Mapping, error)
	// ActiveExists reports whether an active mapping already links the pair.
	ActiveExists(ctx context.Context, patientID, doctorID uuid.UUID) (bool, error)
	// DeleteOwned removes the mapping only when its patient belongs to the
	// given user; anything else is ErrNotFound.
	DeleteOwned(ctx context.Context, user, id uuid.UUID) error
}
