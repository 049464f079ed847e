package ports

import (
	"context"
	"time"

	"github.com/comclic/clinic-records/internal/core/domain"
)

// UserRepository persists clinic staff accounts.
type UserRepository interface {
	// Create inserts a user. Unique-index violations surface as
	// domain.ErrUsernameTaken or domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByResetToken(ctx context.Context, token string) (*domain.User, error)
	SetResetToken(ctx context.Context, username, token string, expires time.Time) error
	// UpdatePassword stores a new hash and clears any pending reset token.
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}
