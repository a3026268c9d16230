// Package auth resolves caller identity from bearer tokens and carries the
// per-request identity and tenant values handlers pass to services.
package auth

import (
	"context"
	"errors"
)

var (
	// ErrNoCredentials means the request carried no bearer token.
	ErrNoCredentials = errors.New("no credentials")
	// ErrInvalidToken means a token was present but failed verification.
	ErrInvalidToken = errors.New("invalid token")
)

// Identity is the authenticated caller.
type Identity struct {
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
}

// Tenant scopes every data query to one company.
type Tenant struct {
	CompanyID string `json:"company_id"`
	UserID    string `json:"user_id"`
}

// Tenant returns the identity's tenant scope.
func (i Identity) Tenant() Tenant {
	return Tenant{CompanyID: i.CompanyID, UserID: i.UserID}
}

// RequestContext is built once per request and passed explicitly to
// domain operations.
type RequestContext struct {
	Identity  Identity `json:"identity"`
	Tenant    Tenant   `json:"tenant"`
	RequestID string   `json:"request_id"`
}

// Authenticator verifies a raw bearer token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*Identity, error)
}
