package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

type ctxKey int

const (
	ctxUserKey ctxKey = iota
	ctxSessionKey
)

var (
	errUnauthenticated = errors.New("unauthenticated")
	errSessionRequired = errors.New("session id is required")
)

type authUser struct {
	UserID int64
	Email  string
	Name   string
}

func (a *API) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			respondError(w, http.StatusUnauthorized, errUnauthenticated)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := a.tokenSvc.ParseToken(token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, errUnauthenticated)
			return
		}

		ctx := context.WithValue(r.Context(), ctxUserKey, &authUser{
			UserID: claims.UserID,
			Email:  claims.Email,
			Name:   claims.Name,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionMiddleware resolves the customer session from the X-Session-ID
// header. The session itself is validated by the services, which return
// not-found for ids the store no longer knows.
func (a *API) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(r.Header.Get("X-Session-ID"))
		if sessionID == "" {
			respondError(w, http.StatusBadRequest, errSessionRequired)
			return
		}
		ctx := context.WithValue(r.Context(), ctxSessionKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getAuthUser(ctx context.Context) *authUser {
	val := ctx.Value(ctxUserKey)
	if user, ok := val.(*authUser); ok {
		return user
	}
	return nil
}

func getSessionID(ctx context.Context) string {
	val := ctx.Value(ctxSessionKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
