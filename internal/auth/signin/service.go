package signin

import (
	"context"
	"errors"
	"fmt"

	"github.com/buntagonalprism/firebase-auth-utils/internal/auth"
	"github.com/buntagonalprism/firebase-auth-utils/internal/auth/backend"
	"github.com/buntagonalprism/firebase-auth-utils/internal/auth/provider"
	"github.com/buntagonalprism/firebase-auth-utils/internal/logger"
)

// MinPasswordLength matches the identity backend's own minimum. Checked
// locally on sign-up because the backend and the SDKs disagree on how
// short passwords are reported.
const MinPasswordLength = 6

// Service is the result normalizer: it fronts the identity backend and
// the social providers, translating their native failure signals into the
// status enums in the auth package. Recognized conditions come back as a
// typed outcome with a nil error; anything unrecognized (unknown code,
// network failure, malformed response) comes back as a non-nil error and
// is never guessed into a status.
type Service struct {
	backend   backend.Backend
	providers *provider.Registry
}

// NewService wires the normalizer to its external collaborators.
func NewService(b backend.Backend, providers *provider.Registry) *Service {
	return &Service{
		backend:   b,
		providers: providers,
	}
}

// SignUp creates an email/password account. Missing email and weak
// password are rejected locally, before any backend call, because the
// wrapped services behave inconsistently when handed invalid input.
func (s *Service) SignUp(
	ctx context.Context,
	email string,
	password string,
) (auth.Outcome[auth.EmailSignUpStatus], error) {

	if email == "" {
		return auth.Fail(auth.SignUpMissingEmail), nil
	}
	if len(password) < MinPasswordLength {
		return auth.Fail(auth.SignUpWeakPassword), nil
	}

	identity, err := s.backend.CreateAccount(ctx, email, password)
	if err != nil {
		if ce, ok := backend.AsCodeError(err); ok {
			if status, mapped := auth.SignUpStatusForCode(ce.Code); mapped {
				return auth.Fail(status), nil
			}
			return auth.Outcome[auth.EmailSignUpStatus]{}, fmt.Errorf("sign up: unrecognized backend code %q: %w", ce.Code, err)
		}
		return auth.Outcome[auth.EmailSignUpStatus]{}, fmt.Errorf("sign up: %w", err)
	}

	if identity == nil {
		return auth.Outcome[auth.EmailSignUpStatus]{}, errors.New("sign up: backend returned success without an identity")
	}

	return auth.OK(auth.SignUpSuccess, identity), nil
}

// SignIn authenticates an email/password account. Only presence is
// checked locally; password strength is deliberately not pre-validated
// here, matching the backend's own sign-in behavior.
func (s *Service) SignIn(
	ctx context.Context,
	email string,
	password string,
) (auth.Outcome[auth.EmailSignInStatus], error) {

	if email == "" {
		return auth.Fail(auth.SignInMissingEmail), nil
	}
	if password == "" {
		return auth.Fail(auth.SignInMissingPassword), nil
	}

	identity, err := s.backend.SignIn(ctx, email, password)
	if err != nil {
		if ce, ok := backend.AsCodeError(err); ok {
			if status, mapped := auth.SignInStatusForCode(ce.Code); mapped {
				return auth.Fail(status), nil
			}
			return auth.Outcome[auth.EmailSignInStatus]{}, fmt.Errorf("sign in: unrecognized backend code %q: %w", ce.Code, err)
		}
		return auth.Outcome[auth.EmailSignInStatus]{}, fmt.Errorf("sign in: %w", err)
	}

	if identity == nil {
		return auth.Outcome[auth.EmailSignInStatus]{}, errors.New("sign in: backend returned success without an identity")
	}

	return auth.OK(auth.SignInSuccess, identity), nil
}

// StartSocialSignIn begins the interactive flow for the named provider
// and returns the authorization URL to send the user to. Any active
// provider session is signed out first so the flow presents an account
// picker rather than silently reusing the cached session.
func (s *Service) StartSocialSignIn(
	ctx context.Context,
	providerName string,
	state string,
	codeChallenge string,
) (string, error) {

	p, err := s.providers.Get(providerName)
	if err != nil {
		return "", err
	}

	if p.HasActiveSession(ctx) {
		if err := p.SignOut(ctx); err != nil {
			return "", fmt.Errorf("social sign in: pre-flow sign out of %s: %w", providerName, err)
		}
		logger.Info("cleared provider session before sign in", map[string]any{
			"provider": providerName,
		})
	}

	return p.AuthCodeURL(state, codeChallenge), nil
}

// CompleteSocialSignIn finishes the interactive flow from the provider
// callback. A cancelled callback is an expected outcome and yields the
// cancelled status without touching the provider or the backend; the two
// external calls (code exchange, then credential exchange) run strictly
// in sequence.
func (s *Service) CompleteSocialSignIn(
	ctx context.Context,
	providerName string,
	cb provider.Callback,
) (auth.Outcome[auth.SocialSignInStatus], error) {

	p, err := s.providers.Get(providerName)
	if err != nil {
		return auth.Outcome[auth.SocialSignInStatus]{}, err
	}

	if cb.Cancelled() {
		logger.Info("social sign in cancelled", map[string]any{
			"provider": providerName,
		})
		return auth.Fail(auth.SocialCancelled), nil
	}
	if cb.Err != "" {
		return auth.Outcome[auth.SocialSignInStatus]{}, fmt.Errorf("social sign in: provider callback error %q", cb.Err)
	}

	cred, err := p.ExchangeCode(ctx, cb.Code, cb.Verifier)
	if err != nil {
		return auth.Outcome[auth.SocialSignInStatus]{}, fmt.Errorf("social sign in: %w", err)
	}
	if cred == nil {
		return auth.Fail(auth.SocialCancelled), nil
	}

	identity, err := s.backend.ExchangeSocialCredential(ctx, providerName, cred.IDToken, cred.AccessToken)
	if err != nil {
		return auth.Outcome[auth.SocialSignInStatus]{}, fmt.Errorf("social sign in: credential exchange: %w", err)
	}
	if identity == nil {
		return auth.Outcome[auth.SocialSignInStatus]{}, errors.New("social sign in: backend returned success without an identity")
	}

	return auth.OK(auth.SocialSuccess, identity), nil
}

// IdentityToken returns the current identity's token. Absence is not an
// error: ok is false when no user is signed in.
func (s *Service) IdentityToken(ctx context.Context) (string, bool) {
	identity := s.backend.CurrentIdentity(ctx)
	if identity == nil {
		return "", false
	}
	return identity.IDToken, true
}

// SignOutProvider signs out of a single social provider, checking for an
// active session first.
func (s *Service) SignOutProvider(ctx context.Context, providerName string) error {
	p, err := s.providers.Get(providerName)
	if err != nil {
		return err
	}
	if !p.HasActiveSession(ctx) {
		return nil
	}
	return p.SignOut(ctx)
}

// SignOutAll signs out of every provider with an active session, then the
// backend identity session last, so the backend sign-out cannot leave a
// dangling social session. Best-effort: every sign-out is attempted and
// the first failure is returned.
func (s *Service) SignOutAll(ctx context.Context) error {
	var firstErr error

	for _, p := range s.providers.All() {
		if !p.HasActiveSession(ctx) {
			continue
		}
		if err := p.SignOut(ctx); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("sign out of %s: %w", p.Name(), err)
		}
	}

	if err := s.backend.SignOut(ctx); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("backend sign out: %w", err)
	}

	return firstErr
}
