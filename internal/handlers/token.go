package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-authgate/tokengate/internal/models"
	"github.com/go-authgate/tokengate/internal/services"
	"github.com/go-authgate/tokengate/internal/validation"

	"github.com/gin-gonic/gin"
)

const (
	// isoMillis renders UTC timestamps as ISO-8601 with millisecond precision
	isoMillis = "2006-01-02T15:04:05.000Z"

	errInternal        = "Internal server error"
	errUserIDParamMiss = "`userId` query parameter is required"
)

// TokenResponse is the wire form of a token. Secret is the bearer credential.
type TokenResponse struct {
	ID        string   `json:"id"`
	UserID    string   `json:"userId"`
	Scopes    []string `json:"scopes"`
	CreatedAt string   `json:"createdAt"`
	ExpiresAt string   `json:"expiresAt"`
	Secret    string   `json:"secret"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type TokenHandler struct {
	tokenService *services.TokenService
	now          func() time.Time
}

// NewTokenHandler builds the handler. A nil clock means time.Now.
func NewTokenHandler(ts *services.TokenService, clock func() time.Time) *TokenHandler {
	if clock == nil {
		clock = time.Now
	}
	return &TokenHandler{
		tokenService: ts,
		now:          clock,
	}
}

// CreateToken godoc
//
//	@Summary		Issue a token
//	@Description	Create an opaque bearer token for a user with scopes and a lifetime in minutes
//	@Tags			Tokens
//	@Accept			json
//	@Produce		json
//	@Security		APIKeyAuth
//	@Param			body	body		validation.CreateTokenRequest	true	"Token request"
//	@Success		201		{object}	TokenResponse					"Token issued"
//	@Failure		400		{object}	errorResponse					"Validation failed"
//	@Failure		401		{object}	errorResponse					"Missing or invalid API key"
//	@Failure		500		{object}	errorResponse					"API key not configured or internal error"
//	@Router			/tokens [post]
func (h *TokenHandler) CreateToken(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		log.Printf("[Token] POST /tokens failed to read body: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: errInternal})
		return
	}

	req, err := validation.ParseCreateTokenRequest(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	tok, err := h.tokenService.Issue(c.Request.Context(), req, h.now())
	if err != nil {
		log.Printf("[Token] POST /tokens failed: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: errInternal})
		return
	}

	c.JSON(http.StatusCreated, toTokenResponse(tok))
}

// ListTokens godoc
//
//	@Summary		List active tokens
//	@Description	List a user's unexpired tokens, newest first
//	@Tags			Tokens
//	@Produce		json
//	@Security		APIKeyAuth
//	@Param			userId	query		string			true	"Owner of the tokens"
//	@Success		200		{array}		TokenResponse	"Active tokens"
//	@Failure		400		{object}	errorResponse	"Missing userId"
//	@Failure		401		{object}	errorResponse	"Missing or invalid API key"
//	@Failure		500		{object}	errorResponse	"API key not configured or internal error"
//	@Router			/tokens [get]
func (h *TokenHandler) ListTokens(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("userId"))
	if userID == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: errUserIDParamMiss})
		return
	}

	tokens, err := h.tokenService.ListActive(c.Request.Context(), userID, h.now())
	if err != nil {
		log.Printf("[Token] GET /tokens failed: %v", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: errInternal})
		return
	}

	resp := make([]TokenResponse, 0, len(tokens))
	for i := range tokens {
		resp = append(resp, toTokenResponse(&tokens[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func toTokenResponse(t *models.Token) TokenResponse {
	scopes, ok := t.ScopeList()
	if !ok {
		// lossy on purpose: one bad row must not fail the whole listing
		log.Printf("[Token] token id=%s has undecodable scopes, presenting []", t.ID)
	}
	return TokenResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Scopes:    scopes,
		CreatedAt: t.CreatedAt.UTC().Format(isoMillis),
		ExpiresAt: t.ExpiresAt.UTC().Format(isoMillis),
		Secret:    t.Secret,
	}
}
