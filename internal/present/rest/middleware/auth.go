package middleware

import (
	"context"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/grezzle/goblin-closet/internal/domain"
	"github.com/grezzle/goblin-closet/internal/present/rest/presenter"
	"github.com/grezzle/goblin-closet/internal/service"
)

var tracer = otel.Tracer("auth")

type AuthMiddleware struct {
	auth *service.AuthService
}

func NewAuthMiddleware(auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// IdentifyIdentity resolves the session token into an identity on every
// request and stashes it in the request context. Resolution failures leave
// the request anonymous; the gate decides what that means per route.
func (m *AuthMiddleware) IdentifyIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Auth.Middleware.IdentifyIdentity")
		defer span.End()

		token := sessionToken(c)
		if token == "" {
			goto skipCheckAuthorization
		}

		if identity := m.auth.ResolveSession(ctx, token); identity != nil {
			ctx = context.WithValue(ctx, domain.IdentityCtxKey, identity)
			span.SetAttributes(attribute.String("ExternalID", identity.ExternalID))
		} else {
			span.RecordError(fmt.Errorf("session did not resolve"))
		}

	skipCheckAuthorization:
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// RequireAdmin gates mutating routes. It must run to completion before the
// wrapped handler touches persistence: 401 without a session, 403 with a
// session that is not the admin account.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := IdentityFromContext(c.Request().Context())
		if identity == nil {
			return presenter.Unauthenticated(c)
		}
		if !m.auth.IsAdmin(identity) {
			return presenter.Forbidden(c)
		}
		return next(c)
	}
}

// IdentityFromContext returns the resolved identity, or nil for anonymous
// requests.
func IdentityFromContext(ctx context.Context) *domain.Identity {
	identity, ok := ctx.Value(domain.IdentityCtxKey).(*domain.Identity)
	if !ok {
		return nil
	}
	return identity
}

// sessionToken extracts the opaque session id from the session cookie or,
// for API clients, a bearer Authorization header.
func sessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(domain.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	split := strings.Split(authHeader, " ")
	if len(split) != 2 || split[0] != "Bearer" {
		return ""
	}
	return split[1]
}
