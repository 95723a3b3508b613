package ports

import (
	"time"

	"github.com/google/uuid"
)

// TokenTTL is the validity window of issued bearer tokens.
const TokenTTL = 3 * time.Hour

// Identity is the set of claims carried by a verified bearer token.
type Identity struct {
	Email  string
	UserID uuid.UUID
}

type TokenManager interface {
	Issue(identity Identity) (string, error)
	Verify(token string) (Identity, error)
}
