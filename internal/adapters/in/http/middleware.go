package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Roles asserted by the client. The role is trusted verbatim with no
// credential verification; it only routes the prototype UI, it must never
// be treated as an authenticated identity.
const (
	RoleCompany = "company"
	RoleCarrier = "carrier"

	roleHeader     = "X-User-Role"
	roleContextKey = "userRole"
)

// RoleFromHeader stores the client-asserted role on the request context.
func RoleFromHeader(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		ctx.Set(roleContextKey, ctx.Request().Header.Get(roleHeader))
		return next(ctx)
	}
}

// RequireRole rejects requests whose asserted role does not match. This is
// route grouping, not authorization.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if ctx.Get(roleContextKey) != role {
				return ctx.JSON(http.StatusForbidden, Error{
					Code:    http.StatusForbidden,
					Message: "role " + role + " required",
				})
			}
			return next(ctx)
		}
	}
}
