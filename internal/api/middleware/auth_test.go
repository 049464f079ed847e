package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/comclic/clinic-records/internal/core/domain"
	"github.com/comclic/clinic-records/internal/core/ports"
)

type stubAuthService struct {
	authenticateFn func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuthService) Register(context.Context, ports.RegisterInput) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) Login(context.Context, string, string) (*domain.User, string, error) {
	return nil, "", errors.New("not implemented")
}

func (s *stubAuthService) Logout(context.Context, string) error {
	return errors.New("not implemented")
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	return s.authenticateFn(ctx, token)
}

func (s *stubAuthService) ForgotPassword(context.Context, string) error {
	return errors.New("not implemented")
}

func (s *stubAuthService) ResetPassword(context.Context, string, string) error {
	return errors.New("not implemented")
}

const cookieName = "_comclic_auth"

func TestAuthenticate_ValidCookie(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		authenticateFn: func(_ context.Context, token string) (*domain.User, error) {
			if token != "good-token" {
				t.Fatalf("unexpected token %q", token)
			}
			return &domain.User{Username: "drokoro", Roles: []domain.Role{domain.RoleDoctor}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "good-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(stub, cookieName)(func(c echo.Context) error {
		called = true
		if u := CurrentUser(c); u == nil || u.Username != "drokoro" {
			t.Fatalf("user not set: %+v", u)
		}
		if CurrentToken(c) != "good-token" {
			t.Fatalf("token not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticate_MissingCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	stub := &stubAuthService{authenticateFn: func(context.Context, string) (*domain.User, error) {
		t.Fatalf("service must not be called without a cookie")
		return nil, nil
	}}
	handler := Authenticate(stub, cookieName)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestAuthenticate_IgnoresBearerHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	stub := &stubAuthService{authenticateFn: func(context.Context, string) (*domain.User, error) {
		return &domain.User{Username: "drokoro"}, nil
	}}
	handler := Authenticate(stub, cookieName)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthenticate_RevokedToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "revoked"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	stub := &stubAuthService{authenticateFn: func(context.Context, string) (*domain.User, error) {
		return nil, domain.ErrTokenRevoked
	}}
	handler := Authenticate(stub, cookieName)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrTokenRevoked) {
		t.Fatalf("expected ErrTokenRevoked, got %v", err)
	}
}
