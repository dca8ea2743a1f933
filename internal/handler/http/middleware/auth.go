package middleware

import (
	"net/http"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/auth"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/handler/http/response"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// TokenFromSessionCookie extracts the session token for jwtauth.Verify.
func TokenFromSessionCookie(r *http.Request) string {
	cookie, err := r.Cookie(jwt.SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "session" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// UserIDFromContext reads the authenticated user's ID out of the verified
// claims. Empty string when the request is unauthenticated.
func UserIDFromContext(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	userID, _ := claims["user_id"].(string)
	return userID
}
