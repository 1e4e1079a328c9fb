package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"math/big"
	"strings"
	"time"
)

// Rejection messages, returned verbatim to API callers
const (
	MsgBodyNotObject    = "Body must be an object"
	MsgUserIDInvalid    = "`userId` must be a non-empty string"
	MsgScopesInvalid    = "`scopes` must be a non-empty array of strings"
	MsgExpiresInInvalid = "`expiresInMinutes` must be a positive integer"
)

// maxExpiresInMinutes is the largest lifetime that still fits in a time.Duration
const maxExpiresInMinutes = int64(math.MaxInt64 / int64(time.Minute))

// CreateTokenRequest is a token-creation request that passed validation
type CreateTokenRequest struct {
	UserID           string   `json:"userId"`
	Scopes           []string `json:"scopes"`
	ExpiresInMinutes int      `json:"expiresInMinutes"`
}

// ValidationError carries a caller-facing rejection message
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidationError reports whether err is a *ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// DecodeJSON decodes a request body into a generic value, keeping numbers as
// json.Number so integral checks see the literal the caller sent. A body that
// is not a single JSON value decodes to nil, which the validator rejects as a non-object.
func DecodeJSON(r io.Reader) any {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil
	}
	return payload
}

// ParseCreateTokenRequest decodes raw JSON and validates it
func ParseCreateTokenRequest(body []byte) (CreateTokenRequest, error) {
	return ValidateCreateTokenRequest(DecodeJSON(bytes.NewReader(body)))
}

// ValidateCreateTokenRequest checks payload field by field; the first failing rule wins.
func ValidateCreateTokenRequest(payload any) (CreateTokenRequest, error) {
	obj, ok := payload.(map[string]any)
	if !ok || obj == nil {
		return CreateTokenRequest{}, invalid(MsgBodyNotObject)
	}

	userID, ok := obj["userId"].(string)
	userID = strings.TrimSpace(userID)
	if !ok || userID == "" {
		return CreateTokenRequest{}, invalid(MsgUserIDInvalid)
	}

	scopes, ok := stringSlice(obj["scopes"])
	if !ok || len(scopes) == 0 {
		return CreateTokenRequest{}, invalid(MsgScopesInvalid)
	}

	minutes, ok := positiveInteger(obj["expiresInMinutes"])
	if !ok {
		return CreateTokenRequest{}, invalid(MsgExpiresInInvalid)
	}

	return CreateTokenRequest{
		UserID:           userID,
		Scopes:           scopes,
		ExpiresInMinutes: minutes,
	}, nil
}

func stringSlice(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// positiveInteger accepts any numeric literal with no fractional part, so 5, 5.0 and 5e0 all pass.
func positiveInteger(v any) (int, bool) {
	var f *big.Float
	switch n := v.(type) {
	case json.Number:
		parsed, ok := new(big.Float).SetString(n.String())
		if !ok {
			return 0, false
		}
		f = parsed
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		f = big.NewFloat(n)
	case int:
		f = new(big.Float).SetInt64(int64(n))
	case int64:
		f = new(big.Float).SetInt64(n)
	default:
		return 0, false
	}

	if !f.IsInt() || f.Sign() <= 0 {
		return 0, false
	}
	i, acc := f.Int64()
	if acc != big.Exact || i > maxExpiresInMinutes || i > math.MaxInt {
		return 0, false
	}
	return int(i), true
}
