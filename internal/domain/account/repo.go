package account

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	// GetByEmail returns ErrNotFound when no account matches.
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	EmailInUse(ctx context.Context, email string) (bool, error)
	UsernameInUse(ctx context.Context, username string) (bool, error)
}
