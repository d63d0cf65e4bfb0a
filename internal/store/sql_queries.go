package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-auth/models"
	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

var userColumns = []string{
	"id",
	"email",
	"name",
	"password_hash",
	"role",
	"email_verified",
	"created_at",
	"updated_at",
}

// buildFindUserQuery selects the oldest user whose column equals value.
func buildFindUserQuery(b sq.StatementBuilderType, column string, value any) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		OrderBy("created_at ASC", "id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.ID,
			user.Email,
			user.Name,
			user.PasswordHash,
			user.Role,
			user.EmailVerified,
			user.CreatedAt,
			user.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateUserQuery sets the non-nil fields of update, always bumping
// updated_at. Columns are set in a fixed order: password_hash,
// email_verified, role, updated_at.
func buildUpdateUserQuery(b sq.StatementBuilderType, id string, update models.UserUpdate, now time.Time) (string, []any, error) {
	builder := b.Update(usersTable)

	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}
	if update.EmailVerified != nil {
		builder = builder.Set("email_verified", *update.EmailVerified)
	}
	if update.Role != nil {
		builder = builder.Set("role", *update.Role)
	}

	query, args, err := builder.
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
