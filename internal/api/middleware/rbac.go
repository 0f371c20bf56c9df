package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/hr-asset-system/internal/api/metrics"
	"github.com/staffhub/hr-asset-system/internal/core/domain"
)

// RBAC rejects requests whose verified identity is outside the allowed
// role set. A request without an identity means Auth never ran; that is a
// wiring defect and is rejected with 401 rather than 403.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if _, ok := allowed[identity.Role]; !ok {
				metrics.AuthRequestsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access denied")
			}
			metrics.AuthRequestsTotal.WithLabelValues("ok").Inc()
			return next(c)
		}
	}
}
