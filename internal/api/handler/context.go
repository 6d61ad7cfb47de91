package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/task-system/internal/core/domain"
)

// ctxActor extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both the subject id and
// a known role must be present, otherwise the token is structurally valid but
// operationally unusable.
func ctxActor(c echo.Context) (domain.Actor, error) {
	id, _ := c.Get("user_id").(string)
	roleStr, _ := c.Get("role").(string)

	role := domain.Role(roleStr)
	if id == "" || !role.Valid() {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return domain.Actor{ID: id, Role: role}, nil
}
