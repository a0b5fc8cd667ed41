package router

import (
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"minops/internal/auth"
	"minops/internal/authz"
	errs "minops/internal/errors"
	"minops/internal/handler"
	"minops/internal/repository"
)

// LoadPrincipal resolves the JWT claims left by the echo-jwt middleware
// into a full user row, role and permissions preloaded, and stores it
// for handlers and the permission gate. A token whose user no longer
// exists is treated as unauthenticated.
func LoadPrincipal(userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return respondError(c, errs.ErrUnauthenticated)
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return respondError(c, errs.ErrUnauthenticated)
			}

			user, err := userRepo.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return respondError(c, errs.ErrUnauthenticated)
			}

			c.Set(handler.ContextKeyUser, user)
			return next(c)
		}
	}
}

// RequirePermission gates a route on one permission from the registry.
func RequirePermission(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := authz.Authorize(handler.CurrentUser(c), permission); err != nil {
				return respondError(c, err)
			}
			return next(c)
		}
	}
}

func respondError(c echo.Context, err error) error {
	he := errs.MapErrorToHTTP(err)
	return c.JSON(he.StatusCode, he.ToErrorResponse())
}
