package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-authgate/tokengate/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testAPIKey = "k3y-for-tests"

func newAPIKeyRouter(apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequireAPIKey(apiKey, metrics.NewNoopMetrics()))
	r.POST("/tokens", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	r.GET("/tokens", func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})
	return r
}

func doAPIKeyRequest(r http.Handler, method, key string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(
		context.Background(),
		method,
		"/tokens?userId=u1",
		strings.NewReader(`{"userId":"u1","scopes":["read"],"expiresInMinutes":1}`),
	)
	if key != "" {
		req.Header.Set("x-api-key", key)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAPIKey_ValidKey(t *testing.T) {
	r := newAPIKeyRouter(testAPIKey)

	assert.Equal(t, http.StatusCreated, doAPIKeyRequest(r, http.MethodPost, testAPIKey).Code)
	assert.Equal(t, http.StatusOK, doAPIKeyRequest(r, http.MethodGet, testAPIKey).Code)
}

func TestRequireAPIKey_HeaderNameIsCaseInsensitive(t *testing.T) {
	r := newAPIKeyRouter(testAPIKey)

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/tokens", nil)
	req.Header.Set("X-Api-Key", testAPIKey)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAPIKey_Rejections(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "missing header", key: ""},
		{name: "wrong key", key: "not-the-key"},
		{name: "prefix of key", key: testAPIKey[:4]},
		{name: "key with suffix", key: testAPIKey + "x"},
		{name: "different case", key: strings.ToUpper(testAPIKey)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAPIKeyRouter(testAPIKey)
			for _, method := range []string{http.MethodPost, http.MethodGet} {
				w := doAPIKeyRequest(r, method, tt.key)
				assert.Equal(t, http.StatusUnauthorized, w.Code, method)
				assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String(), method)
			}
		})
	}
}

func TestRequireAPIKey_NotConfiguredFailsClosed(t *testing.T) {
	r := newAPIKeyRouter("")

	for _, key := range []string{"", "anything", testAPIKey} {
		for _, method := range []string{http.MethodPost, http.MethodGet} {
			w := doAPIKeyRequest(r, method, key)
			assert.Equal(t, http.StatusInternalServerError, w.Code, "%s key=%q", method, key)
			assert.JSONEq(t, `{"error":"API key is not configured"}`, w.Body.String())
		}
	}
}

func TestCheckAPIKey(t *testing.T) {
	assert.ErrorIs(t, checkAPIKey("", ""), ErrAPIKeyNotConfigured)
	assert.ErrorIs(t, checkAPIKey("", "k"), ErrAPIKeyNotConfigured)
	assert.ErrorIs(t, checkAPIKey("k", ""), ErrUnauthorized)
	assert.ErrorIs(t, checkAPIKey("k", "j"), ErrUnauthorized)
	assert.NoError(t, checkAPIKey("k", "k"))
}
