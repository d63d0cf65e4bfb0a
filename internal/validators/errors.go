package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrNameTooLong      = errors.New("name is too long")
	ErrInvalidRole      = errors.New("unknown role")
	ErrEmptyToken       = errors.New("token is required")
	ErrEmptyUserID      = errors.New("user id is required")
)
