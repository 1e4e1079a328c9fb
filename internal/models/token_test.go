package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_IsExpired(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{name: "not expired", expiresAt: now.Add(time.Hour), want: false},
		{name: "already expired", expiresAt: now.Add(-time.Second), want: true},
		{name: "expires exactly now", expiresAt: now, want: true},
		{name: "zero time is expired", expiresAt: time.Time{}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := &Token{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, tok.IsExpired(now))
			assert.Equal(t, !tt.want, tok.IsActive(now))
		})
	}
}

func TestToken_Scopes(t *testing.T) {
	t.Run("round trip keeps order and casing", func(t *testing.T) {
		tok := &Token{}
		require.NoError(t, tok.SetScopes([]string{"Write", "read", "read", " admin "}))

		scopes, ok := tok.ScopeList()
		assert.True(t, ok)
		assert.Equal(t, []string{"Write", "read", "read", " admin "}, scopes)
	})

	t.Run("nil scopes encode as empty array", func(t *testing.T) {
		tok := &Token{}
		require.NoError(t, tok.SetScopes(nil))
		assert.Equal(t, "[]", tok.Scopes)
	})

	corrupt := []struct {
		name   string
		stored string
	}{
		{name: "not json", stored: "read write"},
		{name: "empty column", stored: ""},
		{name: "json null", stored: "null"},
		{name: "object", stored: `{"a":1}`},
		{name: "non-string elements", stored: `[1,2]`},
	}
	for _, tt := range corrupt {
		t.Run("corrupt "+tt.name+" yields empty list", func(t *testing.T) {
			tok := &Token{Scopes: tt.stored}
			scopes, ok := tok.ScopeList()
			assert.False(t, ok)
			assert.NotNil(t, scopes)
			assert.Empty(t, scopes)
		})
	}
}

func TestToken_BeforeCreate(t *testing.T) {
	t.Run("assigns an id", func(t *testing.T) {
		tok := &Token{}
		require.NoError(t, tok.BeforeCreate(nil))
		assert.Len(t, tok.ID, 36)
	})

	t.Run("keeps an existing id", func(t *testing.T) {
		tok := &Token{ID: "fixed"}
		require.NoError(t, tok.BeforeCreate(nil))
		assert.Equal(t, "fixed", tok.ID)
	})

	t.Run("ids increase in creation order", func(t *testing.T) {
		prev := ""
		for i := 0; i < 50; i++ {
			tok := &Token{}
			require.NoError(t, tok.BeforeCreate(nil))
			assert.Greater(t, tok.ID, prev)
			prev = tok.ID
		}
	})
}
