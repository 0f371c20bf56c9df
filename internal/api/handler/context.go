package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/hr-asset-system/internal/api/middleware"
	"github.com/staffhub/hr-asset-system/internal/core/domain"
)

// idParam parses the :id path parameter. A missing or non-numeric value is
// a client error, rejected before any service call.
func idParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// actor extracts the identity attached by the Auth middleware. Its absence
// means the middleware chain was miswired; reject with 401.
func actor(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
