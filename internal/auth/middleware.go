// internal/auth/middleware.go
// Bearer token verification for matchmaker requests

package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/logger"
	"github.com/imadgeboyega/kiekky-matchmaker/internal/common/utils"
)

type contextKey string

const matchmakerIDKey contextKey = "matchmakerID"

// Middleware verifies tokens issued by the external identity provider
type Middleware struct {
	secret string
	issuer string
	logger *zap.Logger
}

// NewMiddleware creates a new auth middleware. An empty issuer accepts any issuer.
func NewMiddleware(secret, issuer string, log *zap.Logger) *Middleware {
	return &Middleware{
		secret: secret,
		issuer: issuer,
		logger: logger.OrNop(log),
	}
}

// Authenticate rejects requests without a valid bearer token and stores the
// verified matchmaker ID in the request context
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			utils.ErrorResponse(w, "Missing or invalid authorization header", http.StatusUnauthorized)
			return
		}

		claims, err := utils.ValidateJWT(token, m.secret)
		if err != nil {
			m.logger.Debug("token rejected", zap.Error(err))
			utils.ErrorResponse(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		if m.issuer != "" && claims.Issuer != m.issuer {
			utils.ErrorResponse(w, "Invalid token issuer", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithMatchmakerID(r.Context(), claims.MatchmakerID)))
	})
}

// extractToken extracts the JWT token from the Authorization header
// Supports "Bearer <token>" format
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// WithMatchmakerID returns ctx carrying the verified matchmaker ID
func WithMatchmakerID(ctx context.Context, matchmakerID string) context.Context {
	return context.WithValue(ctx, matchmakerIDKey, matchmakerID)
}

// MatchmakerIDFromContext extracts the matchmaker ID from request context
func MatchmakerIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(matchmakerIDKey).(string)
	return id, ok && id != ""
}
