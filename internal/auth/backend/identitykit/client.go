package identitykit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/buntagonalprism/firebase-auth-utils/internal/auth"
	"github.com/buntagonalprism/firebase-auth-utils/internal/auth/backend"
	"github.com/buntagonalprism/firebase-auth-utils/internal/logger"
)

// Client talks to the identity toolkit REST API. It implements
// backend.Backend and tracks the most recent signed-in identity the way
// the vendor SDKs track their current user.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client

	mu      sync.Mutex
	current *auth.Identity
}

// New builds a Client for the given API base URL and key.
func New(baseURL, apiKey string) (*Client, error) {
	if baseURL == "" || apiKey == "" {
		return nil, errors.New("identitykit config missing required fields")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type accountResponse struct {
	LocalID       string `json:"localId"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
	DisplayName   string `json:"displayName"`
	IDToken       string `json:"idToken"`
	ProviderID    string `json:"providerId"`
	FederatedID   string `json:"federatedId"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) CreateAccount(
	ctx context.Context,
	email string,
	password string,
) (*auth.Identity, error) {

	resp, err := c.post(ctx, "/v1/accounts:signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, err
	}

	return c.setCurrent(resp, "password")
}

func (c *Client) SignIn(
	ctx context.Context,
	email string,
	password string,
) (*auth.Identity, error) {

	resp, err := c.post(ctx, "/v1/accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, err
	}

	return c.setCurrent(resp, "password")
}

func (c *Client) ExchangeSocialCredential(
	ctx context.Context,
	providerName string,
	idToken string,
	accessToken string,
) (*auth.Identity, error) {

	cred := "providerId=" + providerName
	if idToken != "" {
		cred += "&id_token=" + idToken
	}
	if accessToken != "" {
		cred += "&access_token=" + accessToken
	}

	resp, err := c.post(ctx, "/v1/accounts:signInWithIdp", map[string]any{
		"postBody":          cred,
		"requestUri":        "http://localhost",
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, err
	}

	return c.setCurrent(resp, providerName)
}

func (c *Client) CurrentIdentity(ctx context.Context) *auth.Identity {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil
	}
	cp := *c.current
	return &cp
}

func (c *Client) SignOut(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = nil
	return nil
}

// post issues one API call and decodes either an account payload or a
// coded error. Anything else (transport failure, malformed body,
// unexpected status without a code) is returned as a plain error.
func (c *Client) post(
	ctx context.Context,
	path string,
	body map[string]any,
) (*accountResponse, error) {

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("identitykit: encode request: %w", err)
	}

	url := c.baseURL + path + "?key=" + c.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("identitykit: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identitykit: %s: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		var apiErr apiError
		if err := json.NewDecoder(res.Body).Decode(&apiErr); err != nil || apiErr.Error.Message == "" {
			return nil, fmt.Errorf("identitykit: %s returned http %d with unreadable error body", path, res.StatusCode)
		}

		logger.Info("identity backend rejected call", map[string]any{
			"path": path,
			"code": apiErr.Error.Message,
		})

		return nil, &backend.CodeError{
			Code:       apiErr.Error.Message,
			HTTPStatus: res.StatusCode,
		}
	}

	var account accountResponse
	if err := json.NewDecoder(res.Body).Decode(&account); err != nil {
		return nil, fmt.Errorf("identitykit: %s: decode response: %w", path, err)
	}

	return &account, nil
}

// setCurrent converts an account payload to an Identity and records it as
// the signed-in user. A success payload without an ID token is malformed
// and fails loudly rather than producing a half-built identity.
func (c *Client) setCurrent(resp *accountResponse, providerName string) (*auth.Identity, error) {
	if resp.IDToken == "" {
		return nil, errors.New("identitykit: success response missing idToken")
	}

	userID := resp.LocalID
	if userID == "" {
		userID = resp.FederatedID
	}
	if userID == "" {
		return nil, errors.New("identitykit: success response missing account id")
	}

	identity := &auth.Identity{
		Provider:       providerName,
		ProviderUserID: userID,
		Email:          resp.Email,
		EmailVerified:  resp.EmailVerified,
		DisplayName:    resp.DisplayName,
		IDToken:        resp.IDToken,
	}

	c.mu.Lock()
	c.current = identity
	c.mu.Unlock()

	return identity, nil
}
