package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/hr-asset-system/internal/api/metrics"
	"github.com/staffhub/hr-asset-system/internal/core/credentials"
	"github.com/staffhub/hr-asset-system/internal/core/domain"
)

// identityKey is the echo context key the verified identity is stored under.
const identityKey = "identity"

// Auth verifies the bearer token and attaches the decoded identity to the
// request context. Missing or malformed headers and invalid or expired
// tokens short-circuit with 401; the downstream handler never runs.
func Auth(issuer *credentials.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.AuthRequestsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRequestsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				metrics.AuthRequestsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(identityKey, domain.Identity{ID: claims.UserID, Role: claims.Role})
			return next(c)
		}
	}
}

// IdentityFrom extracts the identity attached by Auth. The second return is
// false when Auth did not run for this request.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(identityKey).(domain.Identity)
	return id, ok
}
