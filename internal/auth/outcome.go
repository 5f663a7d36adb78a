package auth

// Outcome is the normalized result of a sign-in operation, generic over
// the status enum of that operation. The identity is present if and only
// if the operation succeeded; callers should use the constructors below
// rather than building the struct by hand.
type Outcome[S ~string] struct {
	Status   S         `json:"status"`
	Identity *Identity `json:"identity,omitempty"`
}

// OK builds a successful outcome carrying the backend identity.
func OK[S ~string](status S, identity *Identity) Outcome[S] {
	return Outcome[S]{Status: status, Identity: identity}
}

// Fail builds a failed outcome. No identity is attached.
func Fail[S ~string](status S) Outcome[S] {
	return Outcome[S]{Status: status}
}

// Succeeded reports whether the outcome carries an identity.
func (o Outcome[S]) Succeeded() bool {
	return o.Identity != nil
}
