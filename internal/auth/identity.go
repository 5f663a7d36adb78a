package auth

// Identity represents an authenticated user as returned by the identity
// backend. It contains facts only, no decisions; this module never
// constructs or mutates one, it only forwards what the backend produced.
type Identity struct {
	Provider       string // "password", "google", "facebook"
	ProviderUserID string // provider-scoped unique user identifier (sub / localId)
	Email          string
	EmailVerified  bool
	DisplayName    string
	IDToken        string // current ID token issued by the backend
}
