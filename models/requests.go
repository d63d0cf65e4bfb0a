package models

// Registration is the payload of POST /api/auth/register.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Credentials is the payload of POST /api/auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EmailRequest is the payload of forgot-password and resend-verification.
type EmailRequest struct {
	Email string `json:"email"`
}

// PasswordReset is the payload of POST /api/auth/reset-password.
type PasswordReset struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// RoleChange is the payload of PATCH /api/users/{id}/role.
// UserID comes from the URL path.
type RoleChange struct {
	UserID string `json:"-"`
	Role   string `json:"role"`
}
