package middleware

import (
	"net/http"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/user"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireRole gates a route group behind a minimum role. The role claim is
// a snapshot from login time; services re-check against the database for
// the operations where staleness matters.
func RequireRole(minRole user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrInsufficientPermissions)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, user.ErrInsufficientPermissions)
				return
			}

			if !user.Role(roleStr).AtLeast(minRole) {
				response.HandleError(w, user.ErrInsufficientPermissions)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
