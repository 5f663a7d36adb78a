package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/buntagonalprism/firebase-auth-utils/internal/auth"
)

// Backend defines the contract with the external identity service.
// Implementations own the network calls and the current-identity state;
// they return identity facts only and make no auth decisions.
type Backend interface {
	// CreateAccount registers a new email/password account. Failures the
	// service recognizes are returned as *CodeError.
	CreateAccount(ctx context.Context, email, password string) (*auth.Identity, error)

	// SignIn authenticates an existing email/password account.
	SignIn(ctx context.Context, email, password string) (*auth.Identity, error)

	// ExchangeSocialCredential trades a social provider credential for a
	// backend identity.
	ExchangeSocialCredential(ctx context.Context, providerName, idToken, accessToken string) (*auth.Identity, error)

	// CurrentIdentity returns the signed-in identity, or nil when no user
	// is signed in. Absence is not an error.
	CurrentIdentity(ctx context.Context) *auth.Identity

	// SignOut clears the backend identity session.
	SignOut(ctx context.Context) error
}

// CodeError is a failure the identity service reported with one of its
// native error codes. The code is a stringly-typed channel on the wire;
// it is decoded against the status tables exactly once, at the
// normalization boundary, and never propagated further as a raw string.
type CodeError struct {
	Code       string
	HTTPStatus int
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("identity backend error %s (http %d)", e.Code, e.HTTPStatus)
}

// AsCodeError unwraps err into a *CodeError if one is in its chain.
func AsCodeError(err error) (*CodeError, bool) {
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
