package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"todo_api/internal/common"
	"todo_api/internal/common/security"
	"todo_api/internal/domain/repository"
)

type contextKey string

const UserIDCtxKey contextKey = "userID"

// Authenticator resolves the caller once per request: verified claims from
// the token (put in context by jwtauth.Verifier) yield a subject, which must
// match a stored user. Missing, malformed, expired tokens and unknown
// subjects all end in 401.
func Authenticator(userRepo repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
				return
			}

			userID, err := security.GetSubjectFromClaims(claims)
			if err != nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims")
				return
			}

			if _, err := userRepo.FindByID(r.Context(), userID); err != nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDCtxKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext returns the authenticated user id set by Authenticator.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}
