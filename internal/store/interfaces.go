package store

import (
	"context"

	"github.com/MKhiriev/go-user-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store over persisted user records.
// Lookups return [ErrUserNotFound] when no record matches.
type UserRepository interface {
	// FindByEmail returns the oldest record with the given email.
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	// Insert persists user and returns the id assigned to it.
	Insert(ctx context.Context, user models.User) (string, error)
	// UpdateFields writes the non-nil fields of update to the record with id.
	UpdateFields(ctx context.Context, id string, update models.UserUpdate) error
}
