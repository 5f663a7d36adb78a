package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/buntagonalprism/firebase-auth-utils/internal/audit"
	"github.com/buntagonalprism/firebase-auth-utils/internal/auth"
	"github.com/buntagonalprism/firebase-auth-utils/internal/auth/backend"
	"github.com/buntagonalprism/firebase-auth-utils/internal/auth/provider"
	"github.com/buntagonalprism/firebase-auth-utils/internal/auth/signin"
	"github.com/buntagonalprism/firebase-auth-utils/internal/middleware"
	"github.com/buntagonalprism/firebase-auth-utils/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBackend struct {
	identity *auth.Identity
	err      error
	current  *auth.Identity
}

func (s *stubBackend) CreateAccount(ctx context.Context, email, password string) (*auth.Identity, error) {
	return s.identity, s.err
}

func (s *stubBackend) SignIn(ctx context.Context, email, password string) (*auth.Identity, error) {
	return s.identity, s.err
}

func (s *stubBackend) ExchangeSocialCredential(ctx context.Context, providerName, idToken, accessToken string) (*auth.Identity, error) {
	return s.identity, s.err
}

func (s *stubBackend) CurrentIdentity(ctx context.Context) *auth.Identity { return s.current }

func (s *stubBackend) SignOut(ctx context.Context) error { return nil }

type memoryRecorder struct {
	events []audit.Event
}

func (m *memoryRecorder) Record(ctx context.Context, e audit.Event) {
	m.events = append(m.events, e)
}

func setup(b backend.Backend) (*gin.Engine, *memoryRecorder) {
	gin.SetMode(gin.TestMode)

	svc := signin.NewService(b, provider.NewRegistry())
	rec := &memoryRecorder{}
	h := NewHandler(svc, rec)

	r := gin.New()
	r.Use(middleware.RequestID())
	h.RegisterRoutes(r, ratelimit.NewMemoryLimiter(100, time.Hour))
	return r, rec
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSignUpEndpoint_Success(t *testing.T) {
	b := &stubBackend{identity: &auth.Identity{Provider: "password", ProviderUserID: "u1", IDToken: "tok"}}
	r, rec := setup(b)

	w := postJSON(r, "/auth/signup", `{"email":"a@b.com","password":"secret1"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var out auth.Outcome[auth.EmailSignUpStatus]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, auth.SignUpSuccess, out.Status)
	require.NotNil(t, out.Identity)

	require.Len(t, rec.events, 1)
	assert.Equal(t, "sign_up", rec.events[0].Operation)
	assert.True(t, rec.events[0].HadIdentity)
}

func TestSignUpEndpoint_WeakPassword(t *testing.T) {
	r, rec := setup(&stubBackend{})

	w := postJSON(r, "/auth/signup", `{"email":"a@b.com","password":"123"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var out auth.Outcome[auth.EmailSignUpStatus]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, auth.SignUpWeakPassword, out.Status)
	assert.Nil(t, out.Identity)

	require.Len(t, rec.events, 1)
	assert.Equal(t, "weak_password", rec.events[0].Status)
}

func TestSignInEndpoint_MappedError(t *testing.T) {
	b := &stubBackend{err: &backend.CodeError{Code: "ERROR_USER_DISABLED", HTTPStatus: 400}}
	r, _ := setup(b)

	w := postJSON(r, "/auth/signin", `{"email":"a@b.com","password":"secret1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var out auth.Outcome[auth.EmailSignInStatus]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, auth.SignInUserDisabled, out.Status)
}

func TestSignInEndpoint_UnexpectedFailureIsOpaque(t *testing.T) {
	b := &stubBackend{err: errors.New("tls handshake timeout")}
	r, rec := setup(b)

	w := postJSON(r, "/auth/signin", `{"email":"a@b.com","password":"secret1"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "tls handshake", "internal detail must not leak")
	assert.Empty(t, rec.events, "unexpected failures are not audited as outcomes")
}

func TestTokenEndpoint(t *testing.T) {
	b := &stubBackend{}
	r, _ := setup(b)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/token", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	b.current = &auth.Identity{IDToken: "tok-1"}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/token", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "tok-1")
}

func TestSignOutEndpoint(t *testing.T) {
	r, rec := setup(&stubBackend{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/signout", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, rec.events, 1)
	assert.Equal(t, "sign_out", rec.events[0].Operation)
}

func TestSocialCallback_RejectsBadState(t *testing.T) {
	r, _ := setup(&stubBackend{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/social/google/callback?state=forged&code=abc", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
