package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-authgate/tokengate/internal/token"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Token is an issued bearer credential. Rows are written once and never updated.
type Token struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"not null;index:idx_tokens_user_created,priority:1"`
	Scopes    string    `gorm:"not null"` // JSON-encoded array of scope strings
	Secret    string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_tokens_user_created,priority:2"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

// BeforeCreate assigns a time-ordered ID so rows sharing a CreatedAt still sort by insertion
func (t *Token) BeforeCreate(tx *gorm.DB) error {
	if t.ID != "" {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate token id: %w", err)
	}
	t.ID = id.String()
	return nil
}

// IsExpired reports whether the token is expired at now
func (t *Token) IsExpired(now time.Time) bool {
	return token.IsExpired(t.ExpiresAt, now)
}

// IsActive is the negation of IsExpired
func (t *Token) IsActive(now time.Time) bool {
	return !t.IsExpired(now)
}

// SetScopes encodes scopes into the stored column, preserving order
func (t *Token) SetScopes(scopes []string) error {
	if scopes == nil {
		scopes = []string{}
	}
	data, err := json.Marshal(scopes)
	if err != nil {
		return err
	}
	t.Scopes = string(data)
	return nil
}

// ScopeList decodes the stored scopes. A payload that is not a JSON array of
// strings yields an empty list and ok=false; callers present it as [] rather than fail.
func (t *Token) ScopeList() (scopes []string, ok bool) {
	if err := json.Unmarshal([]byte(t.Scopes), &scopes); err != nil || scopes == nil {
		return []string{}, false
	}
	return scopes, true
}
