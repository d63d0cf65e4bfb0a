package mailer

import "errors"

var (
	ErrBadRequest   = errors.New("mail relay rejected the message")
	ErrUnauthorized = errors.New("mail relay unauthorized")
	ErrUnavailable  = errors.New("mail relay unavailable")
	ErrEmptyAddress = errors.New("empty recipient address")
)
