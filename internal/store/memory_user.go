package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
)

// memoryUserRepository keeps user records in process memory. It backs the
// "memory" driver and scenario tests.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
	ids   *utils.UUIDGenerator
	now   func() time.Time
}

// NewMemoryUserRepository returns an empty in-memory [UserRepository].
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users: make(map[string]models.User),
		ids:   utils.NewUUIDGenerator(),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (m *memoryUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var (
		found models.User
		ok    bool
	)
	for _, user := range m.users {
		if user.Email != email {
			continue
		}
		if !ok || older(user, found) {
			found, ok = user, true
		}
	}

	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return found, nil
}

func (m *memoryUserRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (m *memoryUserRepository) Insert(ctx context.Context, user models.User) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	user.ID = m.ids.Generate()
	user.CreatedAt = now
	user.UpdatedAt = now
	m.users[user.ID] = user

	return user.ID, nil
}

func (m *memoryUserRepository) UpdateFields(ctx context.Context, id string, update models.UserUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return ErrUserNotFound
	}

	if update.PasswordHash != nil {
		user.PasswordHash = *update.PasswordHash
	}
	if update.EmailVerified != nil {
		user.EmailVerified = *update.EmailVerified
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	user.UpdatedAt = m.now()
	m.users[id] = user

	return nil
}

// older orders records by creation time, then by id (UUIDv7 ids sort by time).
func older(a, b models.User) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}
