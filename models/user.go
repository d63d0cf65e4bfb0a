package models

import "time"

// Roles of the closed role set.
const (
	RoleAdmin = "admin"
	RoleGuest = "guest"
)

// Roles lists every role a user record may hold.
var Roles = []string{RoleAdmin, RoleGuest}

// IsKnownRole reports whether role belongs to [Roles].
func IsKnownRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User is the persisted user record.
// PasswordHash never leaves the process: it is excluded from JSON.
type User struct {
	// ID is an opaque identifier (UUIDv7 string) assigned by the store on insert.
	ID string `json:"id"`

	// Email identifies the account at login, verification and reset.
	Email string `json:"email"`

	// Name is an optional display name.
	Name string `json:"name,omitempty"`

	// PasswordHash is the bcrypt hash of the password. Empty until
	// registration completes.
	PasswordHash string `json:"-"`

	// Role is one of [Roles].
	Role string `json:"role"`

	// EmailVerified flips to true once the verification link is followed.
	EmailVerified bool `json:"email_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasPassword reports whether registration completed for the record.
func (u User) HasPassword() bool {
	return u.PasswordHash != ""
}

// UserUpdate is a partial update of a [User]. Only non-nil fields are written.
type UserUpdate struct {
	PasswordHash  *string
	EmailVerified *bool
	Role          *string
}

// IsEmpty reports whether the update carries no field.
func (u UserUpdate) IsEmpty() bool {
	return u.PasswordHash == nil && u.EmailVerified == nil && u.Role == nil
}
