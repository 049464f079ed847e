package ports

import (
	"context"

	"github.com/comclic/clinic-records/internal/core/domain"
)

// RegisterInput carries a new account request.
type RegisterInput struct {
	Email    string
	Username string
	Password string
	Roles    []domain.Role
}

// AuthService covers the account lifecycle and session validation.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login accepts a username or an email as identifier.
	Login(ctx context.Context, identifier, password string) (*domain.User, string, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}
