package service

import (
	"context"

	"github.com/MKhiriev/go-user-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper

// AuthService drives a user record through NonExistent, Registered and
// Verified, and resolves callers from access tokens.
type AuthService interface {
	Register(ctx context.Context, registration models.Registration) error
	Login(ctx context.Context, credentials models.Credentials) (models.AccessToken, error)

	// ForgotPassword and ResendVerification always succeed for well-formed
	// input, whether or not the email is registered.
	ForgotPassword(ctx context.Context, email string) error
	ResendVerification(ctx context.Context, email string) error

	ResetPassword(ctx context.Context, reset models.PasswordReset) error
	VerifyEmail(ctx context.Context, token string) error

	ParseAccessToken(ctx context.Context, token string) (models.Identity, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	UpdateRole(ctx context.Context, change models.RoleChange) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
