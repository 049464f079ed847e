package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/comclic/clinic-records/internal/api/middleware"
	"github.com/comclic/clinic-records/internal/core/domain"
	"github.com/comclic/clinic-records/internal/core/ports"
)

// CookieConfig controls the access-token cookie.
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      CookieConfig
}

func NewAuthHandler(authService ports.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  response{data=userResponse}
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Roles:    fromStrings[domain.Role](req.Roles),
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "user registered successfully", toUserResponse(user))
}

// Login authenticates a user and sets the access-token cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Username or email, and password"
// @Success      200   {object}  response{data=userResponse}
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.identifier() == "" {
		return domainValidation("username or email is required")
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.identifier(), req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(h.accessCookie(token, h.cookie.TTL))
	return respond(c, http.StatusOK, "login successful", toUserResponse(user))
}

// IsAuthenticated reports the user behind the current cookie.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response{data=userResponse}
// @Failure      401  {object}  ErrorResponse
// @Router       /api/auth/is_authenticated [get]
func (h *AuthHandler) IsAuthenticated(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "authenticated", toUserResponse(user))
}

// Logout revokes the current token and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response
// @Failure      401  {object}  ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := middleware.CurrentToken(c)
	if token == "" {
		return domain.ErrNotLoggedIn
	}
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}

	c.SetCookie(h.accessCookie("", -1))
	return respond(c, http.StatusOK, "logged out successfully", nil)
}

// ForgotPassword mails a password-reset link. GET reads the email from the
// query string.
//
// @Summary      Request a password reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      forgotPasswordRequest  true  "Account email"
// @Success      200   {object}  response
// @Failure      404   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /api/auth/forgot_password [post]
// @Router       /api/auth/forgot_password [get]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.authService.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "password reset link sent", nil)
}

// ResetPassword sets a new password using a mailed reset token.
//
// @Summary      Reset password
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        token  path      string                true  "Reset token"
// @Param        body   body      resetPasswordRequest  true  "New password"
// @Success      200    {object}  response
// @Failure      404    {object}  ErrorResponse
// @Failure      422    {object}  ErrorResponse
// @Router       /api/auth/reset_password/{token} [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.authService.ResetPassword(c.Request().Context(), c.Param("token"), req.NewPassword); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "password reset successful", nil)
}

// accessCookie builds the token cookie; a negative ttl deletes it.
func (h *AuthHandler) accessCookie(value string, ttl time.Duration) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteStrictMode,
	}
	if ttl < 0 {
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
		return cookie
	}
	cookie.MaxAge = int(ttl.Seconds())
	cookie.Expires = time.Now().Add(ttl)
	return cookie
}
