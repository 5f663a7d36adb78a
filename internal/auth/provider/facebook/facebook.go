package facebook

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/buntagonalprism/firebase-auth-utils/internal/auth/provider"
	"github.com/buntagonalprism/firebase-auth-utils/internal/logger"

	"golang.org/x/oauth2"
	fbendpoint "golang.org/x/oauth2/facebook"
)

const providerName = "facebook"

// Provider implements social sign-in against Facebook. Facebook has no
// OIDC discovery document, so this is a plain OAuth code flow; the access
// token itself is the credential the identity backend exchanges.
type Provider struct {
	oauthConfig *oauth2.Config

	mu      sync.Mutex
	session *provider.Credential
}

func New(
	clientID string,
	clientSecret string,
	redirectURL string,
) (*Provider, error) {

	if clientID == "" || clientSecret == "" || redirectURL == "" {
		return nil, errors.New("facebook oauth config missing required fields")
	}

	oauthCfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     fbendpoint.Endpoint,
		Scopes: []string{
			"public_profile",
			"email",
		},
	}

	return &Provider{oauthConfig: oauthCfg}, nil
}

// Name returns the provider identifier used by the registry.
func (p *Provider) Name() string {
	return providerName
}

// HasActiveSession reports whether a cached Facebook session exists.
func (p *Provider) HasActiveSession(ctx context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session != nil
}

// SignOut drops the cached session.
func (p *Provider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.session = nil
	return nil
}

// AuthCodeURL builds the OAuth authorization URL. auth_type=reauthenticate
// makes Facebook re-prompt instead of silently reusing its own session.
func (p *Provider) AuthCodeURL(state string, codeChallenge string) string {
	return p.oauthConfig.AuthCodeURL(
		state,
		oauth2.SetAuthURLParam("auth_type", "reauthenticate"),
		oauth2.SetAuthURLParam("code_challenge", codeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)
}

// ExchangeCode exchanges the authorization code for an access token and
// caches the credential as the active session.
func (p *Provider) ExchangeCode(
	ctx context.Context,
	code string,
	codeVerifier string,
) (*provider.Credential, error) {

	token, err := p.oauthConfig.Exchange(
		ctx,
		code,
		oauth2.SetAuthURLParam("code_verifier", codeVerifier),
	)
	if err != nil {
		return nil, fmt.Errorf("facebook token exchange failed: %w", err)
	}

	if token.AccessToken == "" {
		return nil, errors.New("facebook did not return access_token")
	}

	logger.Info("facebook token exchanged", map[string]any{
		"expiry_unix": token.Expiry.Unix(),
	})

	cred := &provider.Credential{
		Provider:    providerName,
		AccessToken: token.AccessToken,
	}

	p.mu.Lock()
	p.session = cred
	p.mu.Unlock()

	return cred, nil
}
