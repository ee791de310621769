// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/lunch-decider/auth"
	"github.com/danielhkuo/lunch-decider/models"
)

const (
	APIKeyHeader     = "x-api-key"
	AppVersionHeader = "X-App-Version"
)

type contextKey int

const (
	identityKey contextKey = iota
	appVersionKey
)

// IdentityResolver loads the identity of an authenticated user
type IdentityResolver interface {
	Identify(ctx context.Context, userID string) (models.Identity, error)
}

// Authenticator resolves callers from the x-api-key header and HS256 bearer
// tokens.
type Authenticator struct {
	users  IdentityResolver
	secret []byte
	issuer string
}

func NewAuthenticator(users IdentityResolver, secret, issuer string) *Authenticator {
	return &Authenticator{
		users:  users,
		secret: []byte(secret),
		issuer: issuer,
	}
}

// WithIdentity attaches the caller's identity to the request context. A
// request without credentials passes through anonymous; a bearer token that
// fails verification is rejected with 401.
func (a *Authenticator) WithIdentity(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := models.Identity{
			APIKey: strings.TrimSpace(r.Header.Get(APIKeyHeader)),
		}

		if header := r.Header.Get("Authorization"); header != "" {
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				ErrorResponse(w, http.StatusUnauthorized, "Authorization header must use the Bearer scheme")
				return
			}

			claims, err := auth.ParseToken(token, a.secret, a.issuer)
			if err != nil {
				slog.Debug("rejected bearer token", "error", err)
				ErrorResponse(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			user, err := a.users.Identify(r.Context(), claims.Subject)
			if err != nil {
				slog.Debug("token subject not found", "subject", claims.Subject, "error", err)
				ErrorResponse(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			user.APIKey = identity.APIKey
			identity = user
		}

		next(w, r.WithContext(context.WithValue(r.Context(), identityKey, identity)))
	}
}

// RequireUser rejects requests without an authenticated user with 401
func (a *Authenticator) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return a.WithIdentity(func(w http.ResponseWriter, r *http.Request) {
		if !IdentityFromContext(r.Context()).Authenticated() {
			ErrorResponse(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
			return
		}
		next(w, r)
	})
}

// RequireAdmin rejects non-admin users with 403
func (a *Authenticator) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return a.RequireUser(func(w http.ResponseWriter, r *http.Request) {
		if IdentityFromContext(r.Context()).Role != models.RoleAdmin {
			ErrorResponse(w, http.StatusForbidden, "You do not have permission to perform this action.")
			return
		}
		next(w, r)
	})
}

// IdentityFromContext returns the identity attached by WithIdentity, or an
// anonymous identity
func IdentityFromContext(ctx context.Context) models.Identity {
	identity, _ := ctx.Value(identityKey).(models.Identity)
	return identity
}

// WithAppVersion records the X-App-Version header, defaulting to 1.0
func WithAppVersion(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := strings.TrimSpace(r.Header.Get(AppVersionHeader))
		if version == "" {
			version = models.DefaultAppVersion
		}
		next(w, r.WithContext(context.WithValue(r.Context(), appVersionKey, version)))
	}
}

// AppVersion returns the client version recorded by WithAppVersion
func AppVersion(ctx context.Context) string {
	if v, ok := ctx.Value(appVersionKey).(string); ok {
		return v
	}
	return models.DefaultAppVersion
}
