package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the token payload issued by the identity provider.
type Claims struct {
	OrgID string `json:"org_id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuthenticator verifies HS256 tokens signed with a shared secret.
type JWTAuthenticator struct {
	secret []byte
	issuer string
}

var _ Authenticator = (*JWTAuthenticator)(nil)

// NewJWTAuthenticator returns an authenticator for secret. An empty issuer
// skips the iss check.
func NewJWTAuthenticator(secret, issuer string) (*JWTAuthenticator, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &JWTAuthenticator{secret: []byte(secret), issuer: issuer}, nil
}

// Authenticate parses and verifies token. The subject becomes the user ID.
func (a *JWTAuthenticator) Authenticate(_ context.Context, token string) (*Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrNoCredentials
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	// Tenant columns are UUIDs; anything else cannot match a row.
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, fmt.Errorf("%w: subject is not a UUID", ErrInvalidToken)
	}
	if claims.OrgID != "" {
		if _, err := uuid.Parse(claims.OrgID); err != nil {
			return nil, fmt.Errorf("%w: org_id is not a UUID", ErrInvalidToken)
		}
	}

	return &Identity{
		UserID:    claims.Subject,
		CompanyID: claims.OrgID,
		Email:     claims.Email,
		Role:      claims.Role,
	}, nil
}

// Sign issues a token for identity. It exists for tests and local tooling;
// production tokens come from the identity provider.
func (a *JWTAuthenticator) Sign(identity Identity, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = identity.UserID
	if a.issuer != "" && claims.Issuer == "" {
		claims.Issuer = a.issuer
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		OrgID:            identity.CompanyID,
		Email:            identity.Email,
		Role:             identity.Role,
		RegisteredClaims: claims,
	})
	return t.SignedString(a.secret)
}
