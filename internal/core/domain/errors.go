package domain

import (
	"errors"
	"fmt"
)

// Error families. Every error returned by the core wraps one of these so the
// transport layer can map it with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access forbidden")
	ErrValidation   = errors.New("validation failed")
)

var (
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrPatientNotFound      = fmt.Errorf("patient %w", ErrNotFound)
	ErrImmunizationNotFound = fmt.Errorf("immunization %w", ErrNotFound)
	ErrFinanceNotFound      = fmt.Errorf("financial record %w", ErrNotFound)
	ErrResetTokenNotFound   = fmt.Errorf("reset token %w", ErrNotFound)

	ErrUsernameTaken = fmt.Errorf("%w: username already exists", ErrConflict)
	ErrEmailTaken    = fmt.Errorf("%w: email already exists", ErrConflict)
	ErrDuplicateKey  = fmt.Errorf("%w: record already exists", ErrConflict)

	ErrInvalidToken = fmt.Errorf("%w: invalid token", ErrUnauthorized)
	ErrTokenRevoked = fmt.Errorf("%w: token revoked", ErrUnauthorized)
	ErrNotLoggedIn  = fmt.Errorf("%w: you are not logged in", ErrUnauthorized)

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCredentialFormat   = errors.New("invalid password hash format")
)
