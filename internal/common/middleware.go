package common

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const (
	ContextAdminID  contextKey = "admin_id"
	ContextUsername contextKey = "username"
)

// AuthMiddleware guards the /api/admin routes. Every admin handler behind it
// can assume a valid session has already been established.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, "authorization required", http.StatusUnauthorized)
			return
		}

		// header = Bearer <token>
		parts := strings.Fields(header)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			http.Error(w, "invalid auth header", http.StatusUnauthorized)
			return
		}

		claims, err := ValidToken(parts[1])
		if err != nil {
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		// inject admin identity into context
		ctx := context.WithValue(r.Context(), ContextAdminID, claims.AdminID)
		ctx = context.WithValue(ctx, ContextUsername, claims.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminIDFromContext pulls the authenticated admin id injected by AuthMiddleware
func AdminIDFromContext(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(ContextAdminID).(uint64)
	return id, ok
}
