// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrTokenInvalid is returned for a token with a bad signature, a wrong
	// class, a wrong issuer or a malformed payload.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired is returned for a well-signed token past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrEmptyPassword is returned by [PasswordHasher.Hash] for empty input.
	ErrEmptyPassword = errors.New("empty password")
	// ErrMalformedHash is returned by [PasswordHasher.Verify] when the stored
	// hash cannot be decoded.
	ErrMalformedHash = errors.New("malformed password hash")

	errInvalidTokenParams = errors.New("invalid params for generating token")
)
