package scope

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"campaign-srv/internal/model"
)

type contextKey string

const (
	scopeKey   contextKey = "scope"
	payloadKey contextKey = "payload"
)

// Payload is the verified token payload a scope is derived from.
type Payload struct {
	Subject  string
	UserID   string
	Username string
	Role     string
}

// NewScope creates a new scope from a token payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

// SetPayloadToContext attaches the raw token payload to the context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey, payload)
}

// GetPayloadFromContext returns the token payload stored in the context, if any.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(payloadKey).(Payload)
	return payload, ok
}

// SetScopeToContext attaches the scope to the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey, sc)
}

// GetScopeFromContext returns the scope stored in the context, if any.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(scopeKey).(model.Scope)
	return sc, ok
}

// CreateScopeHeader encodes the scope as a base64 JSON header value.
func CreateScopeHeader(sc model.Scope) (string, error) {
	jsonData, err := json.Marshal(sc)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(jsonData), nil
}

// ParseScopeHeader decodes a base64 JSON scope header value.
func ParseScopeHeader(scopeHeader string) (model.Scope, error) {
	jsonData, err := base64.StdEncoding.DecodeString(scopeHeader)
	if err != nil {
		return model.Scope{}, err
	}

	var sc model.Scope
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return model.Scope{}, err
	}

	return sc, nil
}
