package common

import (
	"errors"
	"net/http"
	"strings"

	"vidshare/internal/logging"
)

const (
	MsgMissingToken = "Unauthorized: missing authorization token"
	MsgUnauthorized = "Unauthorized"
)

// AuthMiddleware guards protected routes.
//
// A request without an Authorization header is rejected with a descriptive
// 401. Otherwise the token is the second whitespace separated segment of the
// header; any verification failure yields a generic 401. On success the
// identity is attached to the request context for the handler.
func AuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header, present := r.Header["Authorization"]
			if !present || len(header) == 0 {
				WriteMessage(w, http.StatusUnauthorized, MsgMissingToken)
				return
			}

			// "Bearer <token>"
			parts := strings.Fields(header[0])
			if len(parts) < 2 || !strings.EqualFold(parts[0], "bearer") {
				writeUnauthorized(w)
				return
			}

			claims, err := verifier.ValidToken(parts[1])
			if errors.Is(err, ErrMissingSecret) {
				logging.Logger.Error().Err(err).Msg("token verification attempted without a signing secret")
				WriteMessage(w, http.StatusInternalServerError, MsgInternalError)
				return
			}
			if err != nil {
				logging.Logger.Debug().Err(err).Msg("rejected bearer token")
				writeUnauthorized(w)
				return
			}

			ctx := WithIdentity(r.Context(), claims.Identity())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	WriteJSON(w, http.StatusUnauthorized, MessageResponse{
		Status:  http.StatusUnauthorized,
		Message: MsgUnauthorized,
	})
}

// RequireIdentity fetches the caller or writes a 401. Handlers call it first
// so a route mounted without the middleware still fails closed.
func RequireIdentity(w http.ResponseWriter, r *http.Request) (Identity, bool) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteMessage(w, http.StatusUnauthorized, MsgUnauthorized)
		return Identity{}, false
	}
	return id, true
}
