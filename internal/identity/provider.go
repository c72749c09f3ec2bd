// Package identity abstracts the external identity provider. The service
// layer only sees opaque user ids and the AuthError surface; how credentials
// are stored is the provider's business.
package identity

import (
	"context"
	"errors"
)

// Provider mirrors the identity provider's capability surface: create an
// account, or authenticate against an existing one. Both return the opaque
// stable id that keys the user's profile record.
type Provider interface {
	CreateAccount(ctx context.Context, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
}

// Sentinel errors returned by providers. The auth service maps them onto the
// AuthError taxonomy.
var (
	ErrAccountExists      = errors.New("identity: account already exists")
	ErrInvalidCredentials = errors.New("identity: invalid credentials")
)
