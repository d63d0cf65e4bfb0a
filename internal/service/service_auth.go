// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/crypto"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/mailer"
	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/models"
)

// authService is the concrete implementation of AuthService.
//
// Steps inside one call are strictly sequential: hash before persist,
// persist before notify. Taxonomy errors are returned to the caller and
// never logged here; only swallowed notification failures are.
type authService struct {
	// userRepository is the credential store.
	userRepository store.UserRepository

	hasher crypto.PasswordHasher
	tokens crypto.TokenIssuer

	// sender delivers verification and reset emails. Its failures never
	// fail the calling operation.
	sender    mailer.Sender
	templates mailer.Templates

	// defaultRole is stored when a registration names no role.
	defaultRole string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over its collaborators.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	tokens crypto.TokenIssuer,
	sender mailer.Sender,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		sender:         sender,
		templates:      mailer.NewTemplates(cfg.PublicURL),
		defaultRole:    cfg.DefaultRole,
		logger:         logger,
	}
}

// Register creates an unverified account and emails a verification link.
//
// Returns ErrEmailAlreadyExists when a record with the same email exists.
// The existence check and the insert are not atomic. A failed email does
// not roll back the created record.
func (a *authService) Register(ctx context.Context, registration models.Registration) error {
	_, err := a.userRepository.FindByEmail(ctx, registration.Email)
	switch {
	case err == nil:
		return ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := a.hasher.Hash(registration.Password)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	role := registration.Role
	if role == "" {
		role = a.defaultRole
	}

	_, err = a.userRepository.Insert(ctx, models.User{
		Email:        registration.Email,
		Name:         registration.Name,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	a.sendVerification(ctx, registration.Email)
	return nil
}

// Login checks, in order: the account is registered, its email is
// verified, the password matches. On success it returns a fresh access token.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.AccessToken, error) {
	user, err := a.userRepository.FindByEmail(ctx, credentials.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.AccessToken{}, ErrNotRegistered
		}
		return models.AccessToken{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !user.HasPassword() {
		return models.AccessToken{}, ErrNotRegistered
	}

	if !user.EmailVerified {
		return models.AccessToken{}, ErrEmailNotVerified
	}

	ok, err := a.hasher.Verify(credentials.Password, user.PasswordHash)
	if err != nil {
		return models.AccessToken{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		return models.AccessToken{}, ErrInvalidCredentials
	}

	token, err := a.tokens.IssueAccessToken(user)
	if err != nil {
		return models.AccessToken{}, fmt.Errorf("access token creation failed: %w", err)
	}

	return models.AccessToken{AccessToken: token}, nil
}

// ForgotPassword emails a reset link. It issues the token without checking
// that the email is registered and reports success in every case.
func (a *authService) ForgotPassword(ctx context.Context, email string) error {
	a.notify(ctx, email, mailer.ResetSubject, a.tokens.IssueResetToken, a.templates.ResetEmail)
	return nil
}

// ResendVerification emails a new verification link when the account
// exists and is still unverified. It reports success in every case.
func (a *authService) ResendVerification(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Err(err).Msg("resend verification: user search failed")
		}
		return nil
	}

	if !user.EmailVerified {
		a.sendVerification(ctx, user.Email)
	}

	return nil
}

// ResetPassword sets a new password for the email carried by a valid reset
// token. Token errors are returned as crypto.ErrTokenInvalid or
// crypto.ErrTokenExpired.
func (a *authService) ResetPassword(ctx context.Context, reset models.PasswordReset) error {
	email, err := a.tokens.ParseResetToken(reset.Token)
	if err != nil {
		return err
	}

	user, err := a.findByEmail(ctx, email)
	if err != nil {
		return err
	}

	if !user.HasPassword() {
		return ErrNotRegistered
	}

	hash, err := a.hasher.Hash(reset.Password)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}

	return a.update(ctx, user.ID, models.UserUpdate{PasswordHash: &hash})
}

// VerifyEmail marks the account of a valid verification token as verified.
// Repeating it is not an error.
func (a *authService) VerifyEmail(ctx context.Context, token string) error {
	email, err := a.tokens.ParseVerificationToken(token)
	if err != nil {
		return err
	}

	user, err := a.findByEmail(ctx, email)
	if err != nil {
		return err
	}

	verified := true
	return a.update(ctx, user.ID, models.UserUpdate{EmailVerified: &verified})
}

func (a *authService) ParseAccessToken(ctx context.Context, token string) (models.Identity, error) {
	return a.tokens.ParseAccessToken(token)
}

func (a *authService) GetUser(ctx context.Context, id string) (models.User, error) {
	user, err := a.userRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdateRole replaces the stored role. Access checks pick it up on the
// next request.
func (a *authService) UpdateRole(ctx context.Context, change models.RoleChange) error {
	if !models.IsKnownRole(change.Role) {
		return ErrInvalidRole
	}

	role := change.Role
	return a.update(ctx, change.UserID, models.UserUpdate{Role: &role})
}

func (a *authService) findByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := a.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return user, nil
}

func (a *authService) update(ctx context.Context, id string, update models.UserUpdate) error {
	err := a.userRepository.UpdateFields(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("user update failed: %w", err)
	}

	return nil
}

func (a *authService) sendVerification(ctx context.Context, email string) {
	a.notify(ctx, email, mailer.VerificationSubject, a.tokens.IssueVerificationToken, a.templates.VerificationEmail)
}

// notify issues a token, renders it into an email and hands it to the
// sender. Every failure is logged and swallowed.
func (a *authService) notify(
	ctx context.Context,
	email, subject string,
	issue func(email string) (string, error),
	render func(token string) (string, error),
) {
	log := logger.FromContext(ctx)

	token, err := issue(email)
	if err != nil {
		log.Warn().Err(err).Str("subject", subject).Msg("token issuance for email failed")
		return
	}

	body, err := render(token)
	if err != nil {
		log.Warn().Err(err).Str("subject", subject).Msg("email rendering failed")
		return
	}

	if err = a.sender.Send(ctx, email, subject, body); err != nil {
		log.Warn().Err(err).Str("subject", subject).Msg("email dispatch failed")
	}
}
