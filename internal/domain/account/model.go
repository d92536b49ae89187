package account

import (
	"time"

	"github.com/google/uuid"
)

// User is an API account. Every patient record is owned by the user who
// created it.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// RegisterInput is the client payload for account creation.
type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// LoginInput is the client payload for authentication.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
