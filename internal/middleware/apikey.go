package middleware

import (
	"crypto/subtle"
	"errors"
	"log"
	"net/http"

	"github.com/go-authgate/tokengate/internal/config"
	"github.com/go-authgate/tokengate/internal/core"

	"github.com/gin-gonic/gin"
)

var (
	// ErrAPIKeyNotConfigured means the operator never set API_KEY; callers get a 500.
	ErrAPIKeyNotConfigured = errors.New("API key is not configured")

	// ErrUnauthorized covers both a missing and a wrong x-api-key header.
	ErrUnauthorized = errors.New("Unauthorized")
)

// RequireAPIKey rejects requests whose x-api-key header does not match apiKey.
// With an empty apiKey every request fails closed with 500.
func RequireAPIKey(apiKey string, m core.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := checkAPIKey(apiKey, c.GetHeader(config.APIKeyHeader)); err != nil {
			status := http.StatusUnauthorized
			switch {
			case errors.Is(err, ErrAPIKeyNotConfigured):
				status = http.StatusInternalServerError
				m.RecordAPIKeyRejected("not_configured")
				log.Printf("[Auth] %s %s rejected: %v", c.Request.Method, c.Request.URL.Path, err)
			case c.GetHeader(config.APIKeyHeader) == "":
				m.RecordAPIKeyRejected("missing")
			default:
				m.RecordAPIKeyRejected("invalid")
			}
			c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
			return
		}
		c.Next()
	}
}

func checkAPIKey(expected, provided string) error {
	if expected == "" {
		return ErrAPIKeyNotConfigured
	}
	if provided == "" || !secureEqual(provided, expected) {
		return ErrUnauthorized
	}
	return nil
}

// secureEqual compares secrets in constant time
func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
