package auth

import (
	"github.com/google/uuid"

	"accounts/internal/domain/service"
)

// uuidTokenIssuer issues opaque session tokens backed by UUIDv4, which draws
// from crypto/rand. 122 bits of entropy keeps tokens unguessable from prior
// values or timing.
type uuidTokenIssuer struct{}

// NewUUIDTokenIssuer is the constructor for uuidTokenIssuer.
func NewUUIDTokenIssuer() service.TokenIssuer {
	return &uuidTokenIssuer{}
}

// Issue returns a fresh opaque token.
func (i *uuidTokenIssuer) Issue() string {
	return uuid.NewString()
}
