package entity

import "time"

// Roles a user can hold. New accounts always start as RoleUser;
// transitions happen only through the admin role-update endpoint.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash and must never be serialized.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	DateOfBirth string    `json:"dateOfBirth"`
	ImageURL    string    `json:"image"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ValidRole reports whether r is a known role name.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}
