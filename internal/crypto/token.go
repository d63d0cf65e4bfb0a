package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenClass binds a class to its secret and lifetime. A zero ttl means the
// token carries no "exp" claim.
type tokenClass struct {
	name   models.TokenClass
	secret []byte
	ttl    time.Duration
}

type jwtIssuer struct {
	issuer string

	access       tokenClass
	verification tokenClass
	reset        tokenClass

	now func() time.Time
}

// NewTokenIssuer builds an HS256 [TokenIssuer] from the application config.
func NewTokenIssuer(cfg config.App) (TokenIssuer, error) {
	if cfg.TokenIssuer == "" || cfg.AccessTokenSecret == "" ||
		cfg.VerificationTokenSecret == "" || cfg.ResetTokenSecret == "" ||
		cfg.AccessTokenTTL <= 0 || cfg.ResetTokenTTL <= 0 {
		return nil, errInvalidTokenParams
	}

	return &jwtIssuer{
		issuer:       cfg.TokenIssuer,
		access:       tokenClass{name: models.TokenClassAccess, secret: []byte(cfg.AccessTokenSecret), ttl: cfg.AccessTokenTTL},
		verification: tokenClass{name: models.TokenClassVerification, secret: []byte(cfg.VerificationTokenSecret), ttl: cfg.VerificationTokenTTL},
		reset:        tokenClass{name: models.TokenClassReset, secret: []byte(cfg.ResetTokenSecret), ttl: cfg.ResetTokenTTL},
		now:          time.Now,
	}, nil
}

func (j *jwtIssuer) IssueAccessToken(user models.User) (string, error) {
	if user.ID == "" {
		return "", errInvalidTokenParams
	}

	claims := &models.AccessClaims{
		RegisteredClaims: j.registeredClaims(j.access, user.ID),
		Role:             user.Role,
		Email:            user.Email,
	}

	return j.sign(j.access, claims)
}

func (j *jwtIssuer) IssueVerificationToken(email string) (string, error) {
	return j.issueEmailToken(j.verification, email)
}

func (j *jwtIssuer) IssueResetToken(email string) (string, error) {
	return j.issueEmailToken(j.reset, email)
}

func (j *jwtIssuer) ParseAccessToken(tokenString string) (models.Identity, error) {
	claims := &models.AccessClaims{}
	if err := j.parse(j.access, tokenString, claims); err != nil {
		return models.Identity{}, err
	}

	if claims.Subject == "" {
		return models.Identity{}, fmt.Errorf("%w: empty subject", ErrTokenInvalid)
	}

	return models.Identity{
		ID:    claims.Subject,
		Role:  claims.Role,
		Email: claims.Email,
	}, nil
}

func (j *jwtIssuer) ParseVerificationToken(tokenString string) (string, error) {
	return j.parseEmailToken(j.verification, tokenString)
}

func (j *jwtIssuer) ParseResetToken(tokenString string) (string, error) {
	return j.parseEmailToken(j.reset, tokenString)
}

func (j *jwtIssuer) issueEmailToken(class tokenClass, email string) (string, error) {
	if email == "" {
		return "", errInvalidTokenParams
	}

	claims := &models.EmailClaims{
		RegisteredClaims: j.registeredClaims(class, ""),
		Email:            email,
	}

	return j.sign(class, claims)
}

func (j *jwtIssuer) parseEmailToken(class tokenClass, tokenString string) (string, error) {
	claims := &models.EmailClaims{}
	if err := j.parse(class, tokenString, claims); err != nil {
		return "", err
	}

	if claims.Email == "" {
		return "", fmt.Errorf("%w: empty email", ErrTokenInvalid)
	}

	return claims.Email, nil
}

func (j *jwtIssuer) registeredClaims(class tokenClass, subject string) jwt.RegisteredClaims {
	now := j.now()
	claims := jwt.RegisteredClaims{
		Issuer:   j.issuer,
		Subject:  subject,
		Audience: jwt.ClaimStrings{class.name.String()},
		IssuedAt: jwt.NewNumericDate(now),
	}
	if class.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(class.ttl))
	}

	return claims
}

func (j *jwtIssuer) sign(class tokenClass, claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(class.secret)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing %s token: %w", class.name, err)
	}

	return signed, nil
}

func (j *jwtIssuer) parse(class tokenClass, tokenString string, claims jwt.Claims) error {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithAudience(class.name.String()),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(j.now),
	}
	if class.ttl > 0 {
		options = append(options, jwt.WithExpirationRequired())
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return class.secret, nil
	}, options...)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
}
