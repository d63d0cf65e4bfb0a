package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-user-auth/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
	FieldRole     = "role"
	FieldToken    = "token"
	FieldUserID   = "user_id"
)

const (
	// MinPasswordLength is counted in characters.
	MinPasswordLength = 8
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
	MaxNameLength    = 128
)

// AuthValidator implements [Validator] for the request models of the
// authentication flows.
type AuthValidator struct{}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. Optional fields restrict validation to the named
// subset; when omitted every field of the model is checked.
func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Registration:
		return v.validateRegistration(value, fields...)
	case *models.Registration:
		return v.validateRegistration(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.EmailRequest:
		return v.validateEmailRequest(value, fields...)
	case *models.EmailRequest:
		return v.validateEmailRequest(*value, fields...)

	case models.PasswordReset:
		return v.validatePasswordReset(value, fields...)
	case *models.PasswordReset:
		return v.validatePasswordReset(*value, fields...)

	case models.RoleChange:
		return v.validateRoleChange(value, fields...)
	case *models.RoleChange:
		return v.validateRoleChange(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateRegistration(r models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldName, FieldRole}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = validateEmail(r.Email)
		case FieldPassword:
			err = validatePassword(r.Password)
		case FieldName:
			if len([]rune(r.Name)) > MaxNameLength {
				err = ErrNameTooLong
			}
		case FieldRole:
			// empty role falls back to the default one
			if r.Role != "" && !models.IsKnownRole(r.Role) {
				err = ErrInvalidRole
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Login only checks shape: the password policy may have changed since the
// account was created.
func (v *AuthValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(c.Email); err != nil {
				return err
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrPasswordTooShort
			}
			if len(c.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validateEmailRequest(r models.EmailRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		if f != FieldEmail {
			return ErrUnknownField
		}
		if err := validateEmail(r.Email); err != nil {
			return err
		}
	}

	return nil
}

func (v *AuthValidator) validatePasswordReset(r models.PasswordReset, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldToken:
			if strings.TrimSpace(r.Token) == "" {
				return ErrEmptyToken
			}
		case FieldPassword:
			if err := validatePassword(r.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validateRoleChange(r models.RoleChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(r.UserID) == "" {
				return ErrEmptyUserID
			}
		case FieldRole:
			if !models.IsKnownRole(r.Role) {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEmail accepts a bare address only: display names such as
// "Alice <a@x.com>" are rejected.
func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}
