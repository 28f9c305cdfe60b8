package auth

import (
	"chat-relay/domain"
	"context"
	"log/slog"
	"net/http"
	"strings"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RolesKey  contextKey = "roles"
)

// Interceptor validates the optional token of an upgrade request. A request
// without token goes through anonymous unless tokens are required; a bad
// token is always refused.
type Interceptor struct {
	log      *slog.Logger
	tokens   *TokenService
	required bool
}

// NewInterceptor accepts a nil token service, every request is then anonymous.
func NewInterceptor(log *slog.Logger, tokens *TokenService, required bool) *Interceptor {
	return &Interceptor{log: log, tokens: tokens, required: required}
}

func (i *Interceptor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if i.tokens == nil {
			next.ServeHTTP(w, r)
			return
		}
		raw := tokenOf(r)
		if raw == "" {
			if i.required {
				http.Error(w, "authorization token is missing", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		claims, err := i.tokens.ValidateToken(raw)
		if err != nil {
			i.log.Debug("Token refused", "remote_addr", r.RemoteAddr, "error", err)
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, domain.UserID(claims.UserID))
		ctx = context.WithValue(ctx, RolesKey, claims.Roles)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the identity injected by the interceptor.
func UserFromContext(ctx context.Context) (domain.UserID, bool) {
	userID, ok := ctx.Value(UserIDKey).(domain.UserID)
	return userID, ok && userID != ""
}

// tokenOf reads the standard "Bearer <token>" header, then the query.
// Browsers cannot set headers on a WebSocket upgrade.
func tokenOf(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return r.URL.Query().Get("token")
}
