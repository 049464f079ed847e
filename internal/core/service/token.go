package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/comclic/clinic-records/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenClaims is what a validated access token asserts.
type TokenClaims struct {
	Username  string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer signs and validates HS256 access tokens. The secret is read
// once at startup and never mutated.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL is the lifetime of every token this issuer signs.
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Issue signs a token for username. Each token gets a unique id so it can be
// revoked individually.
func (t *TokenIssuer) Issue(username string) (string, TokenClaims, error) {
	now := t.now().UTC().Truncate(time.Second)
	claims := TokenClaims{
		Username:  username,
		TokenID:   uuid.NewString(),
		IssuedAt:  now,
		ExpiresAt: now.Add(t.ttl),
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   claims.Username,
		ID:        claims.TokenID,
		IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
		ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
	})
	signed, err := tkn.SignedString(t.secret)
	if err != nil {
		return "", TokenClaims{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

// Validate checks signature, algorithm and expiry. It does not check that the
// user still exists or that the token was not revoked.
func (t *TokenIssuer) Validate(token string) (TokenClaims, error) {
	if token == "" {
		return TokenClaims{}, domain.ErrInvalidToken
	}

	rc := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, rc, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return TokenClaims{}, domain.ErrInvalidToken
	}
	if rc.Subject == "" || rc.ID == "" {
		return TokenClaims{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, errors.New("missing subject or id"))
	}

	claims := TokenClaims{Username: rc.Subject, TokenID: rc.ID}
	if rc.IssuedAt != nil {
		claims.IssuedAt = rc.IssuedAt.Time
	}
	claims.ExpiresAt = rc.ExpiresAt.Time
	return claims, nil
}
