package domain

import "time"

const (
	RoleClinical   = "clinical"
	RoleManagement = "management"
)

// ValidRole reports whether role is one of the known staff roles.
func ValidRole(role string) bool {
	return role == RoleClinical || role == RoleManagement
}

// User models a staff member account. Exactly one of Username or ExternalID
// is populated, depending on whether the account was created through
// credential registration or through a federated login.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username,omitempty"`
	ExternalID   string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Approved     bool      `json:"approved"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StaffMember is the roster projection of a User exposed to management.
type StaffMember struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// Roster returns the projection of u shown in staff listings.
func (u *User) Roster() StaffMember {
	return StaffMember{ID: u.ID, DisplayName: u.DisplayName, Role: u.Role}
}
