package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/Sanagocat/My-blog-back-end/internal/app"
	"github.com/Sanagocat/My-blog-back-end/internal/logger"
	"github.com/Sanagocat/My-blog-back-end/internal/utils"
	"github.com/Sanagocat/My-blog-back-end/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken] and, on success, stores
// the session claims in the request context under [utils.SessionClaimsCtxKey]
// before delegating to the next handler.
//
// Rejections follow the wire contract:
//   - HTTP 403 {"message":"No token provided"} when the header is absent,
//     cannot be parsed as a bearer token, or carries an empty token.
//   - HTTP 401 {"message":"Invalid or expired token"} when the token fails
//     verification for any reason, expiry included.
//
// Both rejection kinds deny access; the split exists only so clients can
// tell "re-send with a token" apart from "log in again".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSON(w, models.MessageResponse{Message: app.MsgNoToken}, http.StatusForbidden)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			utils.WriteJSON(w, models.MessageResponse{Message: app.MsgNoToken}, http.StatusForbidden)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("token verification failed")
			utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidOrExpiredToken}, http.StatusUnauthorized)
			return
		}

		// Store the claims in the context so that downstream handlers can
		// retrieve them without re-parsing the token.
		ctx = context.WithValue(ctx, utils.SessionClaimsCtxKey, token.SessionClaims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
