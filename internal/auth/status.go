package auth

// Status enums for sign-in outcomes. Each set is closed: values are fixed
// at compile time and an unrecognized provider condition is never coerced
// into one of them.

// EmailSignUpStatus describes the outcome of an email/password sign-up.
type EmailSignUpStatus string

const (
	SignUpSuccess           EmailSignUpStatus = "success"
	SignUpMissingEmail      EmailSignUpStatus = "missing_email"
	SignUpWeakPassword      EmailSignUpStatus = "weak_password"
	SignUpInvalidEmail      EmailSignUpStatus = "invalid_email"
	SignUpEmailAlreadyInUse EmailSignUpStatus = "email_already_in_use"
	SignUpNotAllowed        EmailSignUpStatus = "operation_not_allowed"
)

// EmailSignInStatus describes the outcome of an email/password sign-in.
type EmailSignInStatus string

const (
	SignInSuccess           EmailSignInStatus = "success"
	SignInMissingEmail      EmailSignInStatus = "missing_email"
	SignInMissingPassword   EmailSignInStatus = "missing_password"
	SignInInvalidEmail      EmailSignInStatus = "invalid_email"
	SignInWrongPassword     EmailSignInStatus = "wrong_password"
	SignInUserNotFound      EmailSignInStatus = "user_not_found"
	SignInUserDisabled      EmailSignInStatus = "user_disabled"
	SignInInvalidCredential EmailSignInStatus = "invalid_credential"
	SignInTooManyRequests   EmailSignInStatus = "too_many_requests"
	SignInNotAllowed        EmailSignInStatus = "operation_not_allowed"
)

// SocialSignInStatus describes the outcome of a social provider sign-in.
// Cancellation is an expected outcome, not an error.
type SocialSignInStatus string

const (
	SocialSuccess   SocialSignInStatus = "success"
	SocialCancelled SocialSignInStatus = "cancelled"
)
