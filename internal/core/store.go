package core

import (
	"context"
	"time"

	"github.com/go-authgate/tokengate/internal/models"
)

// TokenStore is the persistence contract the token service depends on.
// *store.Store satisfies it; tests substitute mocks.MockTokenStore.
type TokenStore interface {
	CreateToken(ctx context.Context, t *models.Token) error
	ListActiveTokens(ctx context.Context, userID string, now time.Time) ([]models.Token, error)
}

// ActiveTokenCounter is the read the periodic gauge job needs.
type ActiveTokenCounter interface {
	CountActiveTokens(ctx context.Context, now time.Time) (int64, error)
}
