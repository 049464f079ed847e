package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/comclic/clinic-records/internal/core/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenIssuer_ValidImmediatelyAfterIssue(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, issued, err := issuer.Issue("drokoro")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := issuer.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Username != "drokoro" {
		t.Errorf("expected subject drokoro, got %q", claims.Username)
	}
	if claims.TokenID == "" || claims.TokenID != issued.TokenID {
		t.Errorf("token id mismatch: %q vs %q", claims.TokenID, issued.TokenID)
	}
	if !claims.ExpiresAt.Equal(issued.ExpiresAt) {
		t.Errorf("expiry mismatch: %v vs %v", claims.ExpiresAt, issued.ExpiresAt)
	}
}

func TestTokenIssuer_InvalidAfterTTL(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	ttl := 30 * time.Minute

	issuer := NewTokenIssuer("secret", ttl)
	issuer.now = fixedClock(start)

	token, _, err := issuer.Issue("drokoro")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	issuer.now = fixedClock(start.Add(ttl - time.Second))
	if _, err := issuer.Validate(token); err != nil {
		t.Fatalf("expected token valid before expiry, got %v", err)
	}

	issuer.now = fixedClock(start.Add(ttl + time.Second))
	if _, err := issuer.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after ttl, got %v", err)
	}
}

func TestTokenIssuer_UniqueIDs(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	a, _, _ := issuer.Issue("drokoro")
	b, _, _ := issuer.Issue("drokoro")
	if a == b {
		t.Fatal("expected two tokens for the same user to differ")
	}
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	token, _, _ := NewTokenIssuer("secret", time.Hour).Issue("drokoro")

	if _, err := NewTokenIssuer("other", time.Hour).Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenIssuer_RejectsMalformed(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := issuer.Validate(tok); !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", tok, err)
		}
	}
}

func TestTokenIssuer_RejectsOtherAlgorithms(t *testing.T) {
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "drokoro",
		ID:        "id-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := tkn.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewTokenIssuer("secret", time.Hour).Validate(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for HS512, got %v", err)
	}
}

func TestTokenIssuer_RequiresExpiry(t *testing.T) {
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "drokoro", ID: "id-1"})
	signed, _ := tkn.SignedString([]byte("secret"))

	if _, err := NewTokenIssuer("secret", time.Hour).Validate(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken without exp, got %v", err)
	}
}
