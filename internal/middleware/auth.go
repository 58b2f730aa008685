package middleware

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/percentwise/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// ClientIDKey is the context key for storing the authenticated client ID.
	ClientIDKey contextKey = "client_id"
	// RequestIDKey is the context key for storing the request ID.
	RequestIDKey contextKey = "request_id"
)

// GetClientID extracts the client ID from the context.
// Returns empty string if not found.
func GetClientID(ctx context.Context) string {
	clientID, _ := ctx.Value(ClientIDKey).(string)
	return clientID
}

// RequireAuth returns an interceptor that validates the bearer token on every
// call and adds the client ID to the context. Rejected calls are logged here,
// since they never reach interceptors installed after this one.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, reject(ctx, req, auth.ErrMissingToken)
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return nil, reject(ctx, req, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(parts[1])
			if err != nil {
				return nil, reject(ctx, req, err)
			}

			ctx = context.WithValue(ctx, ClientIDKey, claims.ClientID)
			return next(ctx, req)
		}
	}
}

func reject(ctx context.Context, req connect.AnyRequest, err error) error {
	slog.Warn("RPC unauthenticated",
		"procedure", req.Spec().Procedure,
		"request_id", GetRequestID(ctx),
		"error", err,
	)
	return connect.NewError(connect.CodeUnauthenticated, err)
}
