package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-auth/internal/validators"
	"github.com/MKhiriev/go-user-auth/models"
)

// AuthValidationService rejects malformed input with ErrInvalidDataProvided
// before it reaches the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAuthValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, registration models.Registration) error {
	if err := v.validate(ctx, registration); err != nil {
		return err
	}
	return v.inner.Register(ctx, registration)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.AccessToken, error) {
	if err := v.validate(ctx, credentials); err != nil {
		return models.AccessToken{}, err
	}
	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) ForgotPassword(ctx context.Context, email string) error {
	if err := v.validate(ctx, models.EmailRequest{Email: email}); err != nil {
		return err
	}
	return v.inner.ForgotPassword(ctx, email)
}

func (v *AuthValidationService) ResendVerification(ctx context.Context, email string) error {
	if err := v.validate(ctx, models.EmailRequest{Email: email}); err != nil {
		return err
	}
	return v.inner.ResendVerification(ctx, email)
}

func (v *AuthValidationService) ResetPassword(ctx context.Context, reset models.PasswordReset) error {
	if err := v.validate(ctx, reset); err != nil {
		return err
	}
	return v.inner.ResetPassword(ctx, reset)
}

func (v *AuthValidationService) VerifyEmail(ctx context.Context, token string) error {
	if err := v.validate(ctx, models.PasswordReset{Token: token}, validators.FieldToken); err != nil {
		return err
	}
	return v.inner.VerifyEmail(ctx, token)
}

func (v *AuthValidationService) ParseAccessToken(ctx context.Context, token string) (models.Identity, error) {
	return v.inner.ParseAccessToken(ctx, token)
}

func (v *AuthValidationService) GetUser(ctx context.Context, id string) (models.User, error) {
	return v.inner.GetUser(ctx, id)
}

func (v *AuthValidationService) UpdateRole(ctx context.Context, change models.RoleChange) error {
	if err := v.validate(ctx, change); err != nil {
		return err
	}
	return v.inner.UpdateRole(ctx, change)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) validate(ctx context.Context, obj any, fields ...string) error {
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
