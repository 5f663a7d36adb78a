package auth

// Error-code tables mapping provider-native codes to status enums. Built
// once, read-only for the life of the process; concurrent reads need no
// locking. A code missing from its table is deliberately NOT mapped:
// misclassifying an unknown backend condition could tell a user "wrong
// password" when the real problem is "account disabled", so unknown codes
// surface as unexpected failures instead.

var signUpCodes = map[string]EmailSignUpStatus{
	"ERROR_INVALID_EMAIL":         SignUpInvalidEmail,
	"ERROR_EMAIL_ALREADY_IN_USE":  SignUpEmailAlreadyInUse,
	"ERROR_WEAK_PASSWORD":         SignUpWeakPassword,
	"ERROR_OPERATION_NOT_ALLOWED": SignUpNotAllowed,
}

var signInCodes = map[string]EmailSignInStatus{
	"ERROR_INVALID_EMAIL":         SignInInvalidEmail,
	"ERROR_WRONG_PASSWORD":        SignInWrongPassword,
	"ERROR_USER_NOT_FOUND":        SignInUserNotFound,
	"ERROR_USER_DISABLED":         SignInUserDisabled,
	"ERROR_INVALID_CREDENTIAL":    SignInInvalidCredential,
	"ERROR_TOO_MANY_REQUESTS":     SignInTooManyRequests,
	"ERROR_OPERATION_NOT_ALLOWED": SignInNotAllowed,
}

// SignUpStatusForCode resolves a backend error code against the sign-up
// table. ok is false for unrecognized codes.
func SignUpStatusForCode(code string) (EmailSignUpStatus, bool) {
	s, ok := signUpCodes[code]
	return s, ok
}

// SignInStatusForCode resolves a backend error code against the sign-in
// table. ok is false for unrecognized codes.
func SignInStatusForCode(code string) (EmailSignInStatus, bool) {
	s, ok := signInCodes[code]
	return s, ok
}

// SignUpCodes returns a copy of the sign-up table. Used by diagnostics.
func SignUpCodes() map[string]EmailSignUpStatus {
	out := make(map[string]EmailSignUpStatus, len(signUpCodes))
	for k, v := range signUpCodes {
		out[k] = v
	}
	return out
}

// SignInCodes returns a copy of the sign-in table. Used by diagnostics.
func SignInCodes() map[string]EmailSignInStatus {
	out := make(map[string]EmailSignInStatus, len(signInCodes))
	for k, v := range signInCodes {
		out[k] = v
	}
	return out
}
