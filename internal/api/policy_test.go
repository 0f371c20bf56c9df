package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/staffhub/hr-asset-system/internal/api/middleware"
	"github.com/staffhub/hr-asset-system/internal/core/credentials"
	"github.com/staffhub/hr-asset-system/internal/core/domain"
)

func noopHandlers() map[routeKey]echo.HandlerFunc {
	handlers := make(map[routeKey]echo.HandlerFunc, len(apiPolicies))
	for key := range apiPolicies {
		handlers[key] = func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}
	}
	return handlers
}

func TestRegisterProtected_FullTable(t *testing.T) {
	e := echo.New()
	if err := registerProtected(e.Group("/api"), noopHandlers()); err != nil {
		t.Fatalf("registerProtected returned error: %v", err)
	}
}

func TestRegisterProtected_HandlerWithoutPolicy(t *testing.T) {
	e := echo.New()
	handlers := noopHandlers()
	handlers[routeKey{http.MethodGet, "/unpoliced"}] = func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	if err := registerProtected(e.Group("/api"), handlers); err == nil {
		t.Fatalf("expected error for handler without policy")
	}
}

func TestRegisterProtected_PolicyWithoutHandler(t *testing.T) {
	e := echo.New()
	handlers := noopHandlers()
	delete(handlers, routeKey{http.MethodGet, "/dashboard"})

	if err := registerProtected(e.Group("/api"), handlers); err == nil {
		t.Fatalf("expected error for policy without handler")
	}
}

// Every protected route must enforce its role set end to end: no token is
// 401, an EMPLOYEE token is 403, an HR_MANAGER or SUPER_ADMIN token passes.
func TestProtectedRoutes_Enforcement(t *testing.T) {
	issuer := credentials.NewIssuer("secret", time.Hour)

	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	group := e.Group("/api", middleware.Auth(issuer))
	if err := registerProtected(group, noopHandlers()); err != nil {
		t.Fatalf("registerProtected returned error: %v", err)
	}

	tokens := map[domain.Role]string{}
	for _, role := range []domain.Role{domain.RoleEmployee, domain.RoleHRManager, domain.RoleSuperAdmin} {
		token, err := issuer.Issue(1, role)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		tokens[role] = token
	}

	for key := range apiPolicies {
		// Echo route params are filled with a literal value.
		path := "/api" + key.Path
		if key.Path == "/assets/:id" || key.Path == "/employee/:id" {
			path = "/api" + key.Path[:len(key.Path)-3] + "1"
		}

		req := httptest.NewRequest(key.Method, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s without token: expected 401, got %d", key.Method, key.Path, rec.Code)
		}

		req = httptest.NewRequest(key.Method, path, nil)
		req.Header.Set("Authorization", "Bearer "+tokens[domain.RoleEmployee])
		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s %s as EMPLOYEE: expected 403, got %d", key.Method, key.Path, rec.Code)
		}

		for _, role := range hrRoles {
			req = httptest.NewRequest(key.Method, path, nil)
			req.Header.Set("Authorization", "Bearer "+tokens[role])
			rec = httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Fatalf("%s %s as %s: expected 200, got %d", key.Method, key.Path, role, rec.Code)
			}
		}
	}
}
