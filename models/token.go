package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClass names one of the independently signed token kinds.
// It is carried in the "aud" claim.
type TokenClass string

const (
	TokenClassAccess       TokenClass = "access"
	TokenClassVerification TokenClass = "email-verification"
	TokenClassReset        TokenClass = "password-reset"
)

// String implements [fmt.Stringer].
func (c TokenClass) String() string {
	return string(c)
}

// AccessClaims is the payload of an access token.
// The user id travels in the "sub" claim.
type AccessClaims struct {
	jwt.RegisteredClaims

	Role  string `json:"role"`
	Email string `json:"email"`
}

// EmailClaims is the payload of verification and reset tokens.
type EmailClaims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
}

// Identity is the caller resolved from a valid access token.
type Identity struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Email string `json:"email"`
}
