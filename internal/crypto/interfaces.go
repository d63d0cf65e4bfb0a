package crypto

import "github.com/MKhiriev/go-user-auth/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher is a one-way adaptive password hash.
type PasswordHasher interface {
	// Hash returns a salted hash of plaintext. It fails only on empty input.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. A mismatch is (false, nil);
	// an error is returned only when hash is malformed.
	Verify(plaintext, hash string) (bool, error)
}

// TokenIssuer signs and verifies the access, email-verification and
// password-reset token classes, each with its own secret.
type TokenIssuer interface {
	IssueAccessToken(user models.User) (string, error)
	IssueVerificationToken(email string) (string, error)
	IssueResetToken(email string) (string, error)

	// ParseAccessToken returns [ErrTokenExpired] for a lapsed token and
	// [ErrTokenInvalid] for any other failure.
	ParseAccessToken(token string) (models.Identity, error)
	ParseVerificationToken(token string) (string, error)
	ParseResetToken(token string) (string, error)
}
