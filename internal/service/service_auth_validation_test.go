package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-user-auth/internal/mock"
	"github.com/MKhiriev/go-user-auth/internal/validators"
	"github.com/MKhiriev/go-user-auth/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestValidationSvc(t *testing.T) (AuthService, *mock.MockAuthService) {
	t.Helper()
	inner := mock.NewMockAuthService(gomock.NewController(t))
	return NewAuthValidationService().Wrap(inner), inner
}

func TestAuthValidationService_RejectsBeforeInner(t *testing.T) {
	svc, _ := newTestValidationSvc(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{
			name:    "register with bad email",
			call:    func() error { return svc.Register(ctx, models.Registration{Email: "nope", Password: "Pw123456"}) },
			wantErr: validators.ErrInvalidEmail,
		},
		{
			name: "login without password",
			call: func() error {
				_, err := svc.Login(ctx, models.Credentials{Email: "a@x.com"})
				return err
			},
			wantErr: validators.ErrPasswordTooShort,
		},
		{
			name:    "forgot password with bad email",
			call:    func() error { return svc.ForgotPassword(ctx, "") },
			wantErr: validators.ErrInvalidEmail,
		},
		{
			name:    "resend with bad email",
			call:    func() error { return svc.ResendVerification(ctx, "x") },
			wantErr: validators.ErrInvalidEmail,
		},
		{
			name:    "reset with short password",
			call:    func() error { return svc.ResetPassword(ctx, models.PasswordReset{Token: "t", Password: "short"}) },
			wantErr: validators.ErrPasswordTooShort,
		},
		{
			name:    "verify with empty token",
			call:    func() error { return svc.VerifyEmail(ctx, "") },
			wantErr: validators.ErrEmptyToken,
		},
		{
			name:    "role change to unknown role",
			call:    func() error { return svc.UpdateRole(ctx, models.RoleChange{UserID: "id", Role: "root"}) },
			wantErr: validators.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthValidationService_PassesValidInput(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()

	registration := models.Registration{Email: "a@x.com", Password: "Pw123456"}
	credentials := models.Credentials{Email: "a@x.com", Password: "Pw123456"}
	reset := models.PasswordReset{Token: "t", Password: "NewPw123456"}
	change := models.RoleChange{UserID: "id", Role: models.RoleAdmin}

	inner.EXPECT().Register(ctx, registration).Return(nil)
	inner.EXPECT().Login(ctx, credentials).Return(models.AccessToken{AccessToken: "tok"}, nil)
	inner.EXPECT().ForgotPassword(ctx, "a@x.com").Return(nil)
	inner.EXPECT().ResendVerification(ctx, "a@x.com").Return(nil)
	inner.EXPECT().ResetPassword(ctx, reset).Return(nil)
	inner.EXPECT().VerifyEmail(ctx, "vtok").Return(nil)
	inner.EXPECT().UpdateRole(ctx, change).Return(nil)
	inner.EXPECT().ParseAccessToken(ctx, "tok").Return(models.Identity{ID: "id"}, nil)
	inner.EXPECT().GetUser(ctx, "id").Return(models.User{ID: "id"}, nil)

	assert.NoError(t, svc.Register(ctx, registration))
	token, err := svc.Login(ctx, credentials)
	assert.NoError(t, err)
	assert.Equal(t, "tok", token.AccessToken)
	assert.NoError(t, svc.ForgotPassword(ctx, "a@x.com"))
	assert.NoError(t, svc.ResendVerification(ctx, "a@x.com"))
	assert.NoError(t, svc.ResetPassword(ctx, reset))
	assert.NoError(t, svc.VerifyEmail(ctx, "vtok"))
	assert.NoError(t, svc.UpdateRole(ctx, change))

	identity, err := svc.ParseAccessToken(ctx, "tok")
	assert.NoError(t, err)
	assert.Equal(t, "id", identity.ID)

	user, err := svc.GetUser(ctx, "id")
	assert.NoError(t, err)
	assert.Equal(t, "id", user.ID)
}
