package services

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/go-authgate/tokengate/internal/core"
	"github.com/go-authgate/tokengate/internal/models"
	"github.com/go-authgate/tokengate/internal/token"
	"github.com/go-authgate/tokengate/internal/validation"
)

type TokenService struct {
	store   core.TokenStore
	metrics core.Recorder
}

func NewTokenService(s core.TokenStore, m core.Recorder) *TokenService {
	return &TokenService{
		store:   s,
		metrics: m,
	}
}

// Issue creates and persists a token for a validated request. The returned
// record carries the plaintext secret. Store failures come back as
// *store.StorageError and are not retried.
func (s *TokenService) Issue(
	ctx context.Context,
	req validation.CreateTokenRequest,
	now time.Time,
) (*models.Token, error) {
	start := time.Now()
	now = now.UTC()

	secret, err := token.GenerateSecret()
	if err != nil {
		s.metrics.RecordTokenIssued(false, 0)
		return nil, err
	}

	t := &models.Token{
		UserID:    req.UserID,
		Secret:    secret,
		CreatedAt: now,
		ExpiresAt: token.ComputeExpiresAt(now, req.ExpiresInMinutes),
	}
	if err := t.SetScopes(req.Scopes); err != nil {
		s.metrics.RecordTokenIssued(false, 0)
		return nil, err
	}

	if err := s.store.CreateToken(ctx, t); err != nil {
		s.metrics.RecordTokenIssued(false, 0)
		s.metrics.RecordDatabaseQueryError("create_token")
		return nil, err
	}

	s.metrics.RecordTokenIssued(true, time.Since(start))
	log.Printf(
		"[Token] Issued token id=%s user=%s expires_at=%s",
		t.ID,
		t.UserID,
		t.ExpiresAt.Format(time.RFC3339),
	)
	return t, nil
}

// ListActive returns the user's tokens that are still active at now, newest first.
// userID is trimmed the same way issuance trims it.
func (s *TokenService) ListActive(
	ctx context.Context,
	userID string,
	now time.Time,
) ([]models.Token, error) {
	tokens, err := s.store.ListActiveTokens(ctx, strings.TrimSpace(userID), now.UTC())
	if err != nil {
		s.metrics.RecordTokensListed(false, 0)
		s.metrics.RecordDatabaseQueryError("list_tokens")
		return nil, err
	}
	s.metrics.RecordTokensListed(true, len(tokens))
	return tokens, nil
}
