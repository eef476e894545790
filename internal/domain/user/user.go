package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is the identity record. Created at signup, read at login, never
// updated by any API operation.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Repository interface {
	Save(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	// ExistsByEmailOrUsername backs the signup conflict check. Uniqueness
	// itself is enforced by the database indexes, this is the fast path.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
}
