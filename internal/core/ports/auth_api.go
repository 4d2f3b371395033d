package ports

import (
	"context"

	"github.com/apexsales/admin-console/internal/core/domain"
)

// AuthAPI is the authentication slice of the remote API.
//
// VerifyToken never returns an error: transport failures and non-200
// statuses both mean "not valid", and callers must not tell them apart.
type AuthAPI interface {
	VerifyToken(ctx context.Context, token string) bool
	Login(ctx context.Context, email, password string) (*domain.LoginResult, error)
}

// TokenStore persists the bearer token across process restarts.
// Clear must always succeed locally; it backs logout.
type TokenStore interface {
	Load() string
	Save(token string) error
	Clear()
}
