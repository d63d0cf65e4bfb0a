package service

import (
	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/crypto"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/mailer"
	"github.com/MKhiriev/go-user-auth/internal/store"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(
	storages *store.Storages,
	hasher crypto.PasswordHasher,
	tokens crypto.TokenIssuer,
	sender mailer.Sender,
	cfg config.App,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthService(storages.UserRepository, hasher, tokens, sender, cfg, logger)

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(authService),
		AppInfoService: appInfoService,
	}, nil
}
