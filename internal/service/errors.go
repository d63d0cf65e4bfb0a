package service

import "errors"

var (
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrNotRegistered       = errors.New("user is not registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailNotVerified    = errors.New("email is not verified")
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidRole         = errors.New("invalid role")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
