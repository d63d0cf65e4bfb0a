package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the SQL implementation of [UserRepository] shared by
// PostgreSQL and SQLite. Dialect differences are carried by [DB].
type userRepository struct {
	db     *DB
	ids    *utils.UUIDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "email", email)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "id", id)
}

// Insert assigns a UUIDv7 id and creation timestamps, then persists user.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → [ErrExecutingQuery].
func (r *userRepository) Insert(ctx context.Context, user models.User) (string, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	user.ID = r.ids.Generate()
	user.CreatedAt = now
	user.UpdatedAt = now

	query, args, err := buildInsertUserQuery(r.db.builder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Insert").Msg("failed to build query")
		return "", err
	}

	err = r.db.withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Insert").Msg("failed to insert user")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return "", ErrEmailAlreadyExists
		}
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user.ID, nil
}

// UpdateFields writes the non-nil fields of update and bumps updated_at.
// Returns [ErrUserNotFound] when no row has the given id.
func (r *userRepository) UpdateFields(ctx context.Context, id string, update models.UserUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.builder(), id, update, r.now())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateFields").Msg("failed to build query")
		return err
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		result, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateFields").Str("user_id", id).Msg("failed to update user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) findOne(ctx context.Context, column string, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.builder(), column, value)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findOne").Msg("failed to build query")
		return models.User{}, err
	}

	var user models.User
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(
			&user.ID,
			&user.Email,
			&user.Name,
			&user.PasswordHash,
			&user.Role,
			&user.EmailVerified,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
	})

	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	default:
		log.Err(err).Str("func", "*userRepository.findOne").Str("by", column).Msg("failed to find user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
}
