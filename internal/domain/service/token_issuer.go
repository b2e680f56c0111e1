package service

// TokenIssuer produces opaque session tokens. A token carries no claims; it is
// only meaningful as a lookup key on the user record, so validation lives in
// the repository (FindByToken), not here.
type TokenIssuer interface {
	// Issue returns a fresh token with enough entropy that it cannot be
	// guessed from prior tokens or timing.
	Issue() string
}
