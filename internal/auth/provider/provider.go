package provider

import "context"

// Credential is what a social provider hands back after its interactive
// flow completes. It is exchanged with the identity backend for an
// Identity; this package never inspects token contents.
type Credential struct {
	Provider    string
	IDToken     string
	AccessToken string
}

// Callback carries the query parameters the provider sent to the redirect
// endpoint. Err holds the provider's error parameter when the user
// abandoned the flow.
type Callback struct {
	Code     string
	State    string
	Verifier string // PKCE code verifier issued at flow start
	Err      string
}

// Cancelled reports whether the callback represents the user backing out
// of the provider's consent screen rather than a failure.
func (cb Callback) Cancelled() bool {
	return cb.Err == "access_denied" || (cb.Err == "" && cb.Code == "")
}

// SocialProvider defines the contract every external social sign-in
// provider must implement. Implementations return identity credentials
// only and must not perform user creation, linking, or session management.
type SocialProvider interface {
	// Name returns the provider identifier (e.g. "google", "facebook").
	Name() string

	// HasActiveSession reports whether a cached provider session exists.
	HasActiveSession(ctx context.Context) bool

	// SignOut discards any cached provider session so the next interactive
	// flow presents an account picker instead of silently reusing it.
	SignOut(ctx context.Context) error

	// AuthCodeURL returns the provider authorization URL that starts the
	// interactive flow. State and PKCE parameters come from the caller.
	AuthCodeURL(state string, codeChallenge string) string

	// ExchangeCode finishes the interactive flow, trading the callback
	// code for a provider credential.
	ExchangeCode(ctx context.Context, code string, codeVerifier string) (*Credential, error)
}
