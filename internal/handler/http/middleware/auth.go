package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// RevocationChecker reports whether a raw token was revoked by logout.
type RevocationChecker interface {
	IsTokenRevoked(token string) bool
}

// AuthRequired rejects requests without a valid, unrevoked access token and
// stores the caller's session on the request context. It must run after jwtauth.Verifier.
func AuthRequired(revoked RevocationChecker) func(http.Handler) http.Handler {
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

			if revoked.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			session, err := jwt.SessionFromClaims(claims)
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(user.WithSession(r.Context(), session)))
		}
		return http.HandlerFunc(hfn)
	}
}
