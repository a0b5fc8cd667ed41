package handler

import (
	"github.com/labstack/echo/v4"

	"minops/internal/audit"
	errs "minops/internal/errors"
	"minops/internal/model"
)

// ContextKeyUser is where the principal-loading middleware stores the
// authenticated user. A constant instead of an inline string so a typo
// fails at compile time, not as a silent nil.
const ContextKeyUser = "current_user"

// CurrentUser returns the authenticated user, or nil when the request
// carries no principal.
func CurrentUser(c echo.Context) *model.User {
	user, ok := c.Get(ContextKeyUser).(*model.User)
	if !ok {
		return nil
	}
	return user
}

// ActorFrom builds the audit actor for the current request.
func ActorFrom(c echo.Context) audit.Actor {
	actor := audit.Actor{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
	if user := CurrentUser(c); user != nil {
		actor.UserID = &user.ID
	}
	return actor
}

// respondError translates a domain error into the standard error body.
func respondError(c echo.Context, err error) error {
	he := errs.MapErrorToHTTP(err)
	return c.JSON(he.StatusCode, he.ToErrorResponse())
}
