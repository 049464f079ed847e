package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/comclic/clinic-records/internal/core/domain"
	"github.com/comclic/clinic-records/internal/core/ports"
	"github.com/comclic/clinic-records/internal/pkg/metrics"
)

const resetTokenTTL = time.Hour

// AuthDeps groups the collaborators of AuthService. Sessions and Mail are
// optional; a nil Sessions disables the single-active-session check.
type AuthDeps struct {
	Users     ports.UserRepository
	Blacklist ports.TokenBlacklist
	Sessions  ports.SessionCache
	Tokens    *TokenIssuer
	Passwords *PasswordHasher
	Mail      ports.MailQueue
	// ResetURL is the base of the link mailed on forgot-password; the reset
	// token is appended as the last path segment.
	ResetURL string
}

// AuthService implements registration, login, logout, request authentication
// and the password-reset flow.
type AuthService struct {
	users     ports.UserRepository
	blacklist ports.TokenBlacklist
	sessions  ports.SessionCache
	tokens    *TokenIssuer
	passwords *PasswordHasher
	mail      ports.MailQueue
	resetURL  string
	log       zerolog.Logger
	now       func() time.Time
}

func NewAuthService(deps AuthDeps, log zerolog.Logger) *AuthService {
	passwords := deps.Passwords
	if passwords == nil {
		passwords = NewPasswordHasher(0)
	}
	return &AuthService{
		users:     deps.Users,
		blacklist: deps.Blacklist,
		sessions:  deps.Sessions,
		tokens:    deps.Tokens,
		passwords: passwords,
		mail:      deps.Mail,
		resetURL:  strings.TrimRight(deps.ResetURL, "/"),
		log:       log,
		now:       time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", domain.ErrValidation)
	}
	for _, r := range in.Roles {
		if !r.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, r)
		}
	}
	email := domain.NormalizeEmail(in.Email)

	if err := s.ensureFree(ctx, in.Username, email); err != nil {
		metrics.AuthEventsTotal.WithLabelValues("register", "conflict").Inc()
		return nil, err
	}

	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Username:     in.Username,
		Email:        email,
		PasswordHash: hash,
		Roles:        append([]domain.Role(nil), in.Roles...),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	metrics.AuthEventsTotal.WithLabelValues("register", "success").Inc()
	s.log.Info().Str("username", created.Username).Msg("user registered")
	return created, nil
}

// ensureFree fails with a Conflict when either key is already in use. The
// unique indexes in the store still catch concurrent registrations.
func (s *AuthService) ensureFree(ctx context.Context, username, email string) error {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	return nil
}

// Resolve looks a user up by username, falling back to email.
func (s *AuthService) Resolve(ctx context.Context, identifier string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	return s.users.FindByEmail(ctx, domain.NormalizeEmail(identifier))
}

func (s *AuthService) Login(ctx context.Context, identifier, password string) (*domain.User, string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, "", fmt.Errorf("%w: missing credentials", domain.ErrValidation)
	}

	user, err := s.Resolve(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.AuthEventsTotal.WithLabelValues("login", "not_found").Inc()
		}
		return nil, "", err
	}

	ok, err := s.passwords.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		metrics.AuthEventsTotal.WithLabelValues("login", "bad_credentials").Inc()
		return nil, "", domain.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, "", err
	}

	if s.sessions != nil {
		if err := s.sessions.Store(ctx, user.Username, token, s.tokens.TTL()); err != nil {
			return nil, "", fmt.Errorf("store session: %w", err)
		}
	}

	metrics.AuthEventsTotal.WithLabelValues("login", "success").Inc()
	s.log.Info().Str("username", user.Username).Msg("user logged in")
	return user, token, nil
}

// Authenticate resolves the user a token was issued to. The token must be
// correctly signed, unexpired, not revoked, match the cached session when a
// session cache is configured, and name a user that still exists.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		metrics.AuthEventsTotal.WithLabelValues("authenticate", "invalid_token").Inc()
		return nil, err
	}

	revoked, err := s.blacklist.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, fmt.Errorf("check blacklist: %w", err)
	}
	if revoked {
		metrics.AuthEventsTotal.WithLabelValues("authenticate", "revoked").Inc()
		return nil, domain.ErrTokenRevoked
	}

	if s.sessions != nil {
		current, ok, err := s.sessions.Current(ctx, claims.Username)
		if err != nil {
			return nil, fmt.Errorf("session lookup: %w", err)
		}
		if !ok || current != token {
			metrics.AuthEventsTotal.WithLabelValues("authenticate", "stale_session").Inc()
			return nil, domain.ErrNotLoggedIn
		}
	}

	user, err := s.users.FindByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

// Logout revokes token until its natural expiry and ends the cached session
// when it belongs to this token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return err
	}

	if err := s.blacklist.Revoke(ctx, claims.TokenID, claims.Username, claims.ExpiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	if s.sessions != nil {
		current, ok, err := s.sessions.Current(ctx, claims.Username)
		if err != nil {
			return fmt.Errorf("session lookup: %w", err)
		}
		if ok && current == token {
			if err := s.sessions.Drop(ctx, claims.Username); err != nil {
				return fmt.Errorf("drop session: %w", err)
			}
		}
	}

	metrics.AuthEventsTotal.WithLabelValues("logout", "success").Inc()
	s.log.Info().Str("username", claims.Username).Msg("user logged out")
	return nil
}

// ForgotPassword stores a one-hour reset token and mails the reset link.
// Delivery is best effort: the request succeeds even if the mail later fails.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return err
	}

	resetToken, err := newResetToken()
	if err != nil {
		return err
	}
	if err := s.users.SetResetToken(ctx, user.Username, resetToken, s.now().UTC().Add(resetTokenTTL)); err != nil {
		return err
	}

	if s.mail != nil {
		s.mail.Enqueue(ports.MailMessage{
			To:      user.Email,
			Subject: "Reset your COMCLIC password",
			Body: fmt.Sprintf(
				"Hello %s,\n\nUse the link below within the next hour to choose a new password:\n\n%s/%s\n\nIf you did not ask for this, ignore this email.\n",
				user.Username, s.resetURL, resetToken,
			),
		})
	}

	s.log.Info().Str("username", user.Username).Msg("password reset requested")
	return nil
}

// ResetPassword sets a new password for the owner of resetToken and ends
// their cached session.
func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if resetToken == "" || newPassword == "" {
		return fmt.Errorf("%w: reset token and password are required", domain.ErrValidation)
	}

	user, err := s.users.FindByResetToken(ctx, resetToken)
	if err != nil {
		return err
	}
	if !user.ResetExpires.IsZero() && s.now().After(user.ResetExpires) {
		return domain.ErrResetTokenNotFound
	}

	hash, err := s.passwords.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.Username, hash); err != nil {
		return err
	}

	if s.sessions != nil {
		if err := s.sessions.Drop(ctx, user.Username); err != nil {
			return fmt.Errorf("drop session: %w", err)
		}
	}

	metrics.AuthEventsTotal.WithLabelValues("password_reset", "success").Inc()
	s.log.Info().Str("username", user.Username).Msg("password reset")
	return nil
}

func newResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
