package domain

import (
	"strings"
	"time"
)

// Role is a job function inside the clinic. The set is closed.
type Role string

const (
	RoleDoctor     Role = "Doctor"
	RoleNurse      Role = "Nurse"
	RoleAccountant Role = "Accountant"
	RoleCHEW       Role = "CHEW/RI/others"
)

var knownRoles = map[Role]struct{}{
	RoleDoctor:     {},
	RoleNurse:      {},
	RoleAccountant: {},
	RoleCHEW:       {},
}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	_, ok := knownRoles[r]
	return ok
}

// RoleSet is a required subset of roles; membership is any-of.
type RoleSet []Role

// Allows reports whether at least one of held is in the set.
func (s RoleSet) Allows(held []Role) bool {
	for _, want := range s {
		for _, r := range held {
			if r == want {
				return true
			}
		}
	}
	return false
}

func (s RoleSet) String() string {
	parts := make([]string, len(s))
	for i, r := range s {
		parts[i] = string(r)
	}
	return strings.Join(parts, " or ")
}

// User models an authenticated clinic staff member.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	ResetToken   string    `json:"-"`
	ResetExpires time.Time `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user holds r.
func (u *User) HasRole(r Role) bool {
	return RoleSet{r}.Allows(u.Roles)
}

// NormalizeEmail lower-cases and trims an address; emails are matched
// case-insensitively everywhere.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
