package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// errNoToken means the request carried no usable Authorization header —
// not tampering, just an anonymous request hitting a protected route.
var errNoToken = errors.New("auth: missing bearer token")

// contextKey is an unexported type for context keys in this package.
// A package-private key type means only this package can read or write
// the userID value — no other package can collide with it.
type contextKey string

const userIDKey contextKey = "userID"

// RequireAuth enforces authentication on protected routes.
//
// It reads the JWT from the Authorization header ("Bearer <token>"),
// validates it, and stores the userID in the request context. A missing,
// malformed, or expired token ends the request with 401 before the
// handler runs.
func RequireAuth(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := extractUserID(r, tokens)
			if err != nil {
				writeUnauthorized(w)
				return
			}

			// Store userID in context so handlers can read it
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeUnauthorized sends the 401 body. The {"error","message"} shape
// matches handler.ErrorResponse — this package can't import handler (the
// dependency runs the other way), so the contract is restated here. Keep
// the two in sync.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}{
		Error:   "unauthorized",
		Message: "valid authentication required",
	})
}

// UserIDFromContext retrieves the authenticated user's ID from the request
// context. Returns ("", false) if the request carried no valid token.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// extractUserID reads the bearer token from the Authorization header and
// validates it.
//
// Header format: "Authorization: Bearer eyJhbGciOi..."
// Anything else — missing header, wrong scheme, empty token — is rejected.
func extractUserID(r *http.Request, tokens *TokenService) (string, error) {
	header := r.Header.Get("Authorization")

	const prefix = "Bearer "
	if header == "" || !strings.HasPrefix(header, prefix) {
		return "", errNoToken
	}

	tokenStr := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if tokenStr == "" {
		return "", errNoToken
	}

	return tokens.Validate(tokenStr)
}
