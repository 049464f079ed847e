package service

import (
	"fmt"

	"github.com/comclic/clinic-records/internal/core/domain"
)

// Canonical role sets used by the router and by field-level checks.
var (
	Doctors              = domain.RoleSet{domain.RoleDoctor}
	DoctorsOrAccountants = domain.RoleSet{domain.RoleDoctor, domain.RoleAccountant}
	ChewOrEquivalent     = domain.RoleSet{domain.RoleCHEW}
	NursesOrDoctors      = domain.RoleSet{domain.RoleNurse, domain.RoleDoctor}
)

// Require passes when user holds at least one role in required.
func Require(user *domain.User, required domain.RoleSet) (*domain.User, error) {
	if user == nil {
		return nil, domain.ErrNotLoggedIn
	}
	if !required.Allows(user.Roles) {
		return nil, fmt.Errorf("%w: requires %s", domain.ErrForbidden, required)
	}
	return user, nil
}
