package handler

import (
	"time"

	"github.com/comclic/clinic-records/internal/core/domain"
)

type registerRequest struct {
	Username string   `json:"username" validate:"required,username"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,password"`
	Roles    []string `json:"roles" validate:"dive,role"`
}

// loginRequest accepts either a username or an email; username wins when
// both are present.
type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

func (r loginRequest) identifier() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

type forgotPasswordRequest struct {
	Email string `json:"email" form:"email" query:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	NewPassword string `json:"new_password" form:"new_password" validate:"required,password"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	roles := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		roles[i] = string(r)
	}
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
	}
}
