package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/hr-asset-system/internal/api/middleware"
	"github.com/staffhub/hr-asset-system/internal/core/domain"
)

// routeKey identifies one protected route.
type routeKey struct {
	Method string
	Path   string
}

// hrRoles is the role set for management endpoints. SUPER_ADMIN is granted
// everything HR_MANAGER has; the grant is explicit here, never implied by a
// role hierarchy.
var hrRoles = []domain.Role{domain.RoleHRManager, domain.RoleSuperAdmin}

// apiPolicies is the single authorization table for every route under
// /api. registerProtected refuses to register a route without an entry
// here, and refuses to start with an entry that has no handler, so the
// table stays an exact, auditable mirror of the exposed surface.
var apiPolicies = map[routeKey][]domain.Role{
	{http.MethodPost, "/assets"}:       hrRoles,
	{http.MethodGet, "/assets"}:        hrRoles,
	{http.MethodGet, "/assets/:id"}:    hrRoles,
	{http.MethodPut, "/assets/:id"}:    hrRoles,
	{http.MethodDelete, "/assets/:id"}: hrRoles,

	{http.MethodGet, "/employee"}:             hrRoles,
	{http.MethodGet, "/employee/departments"}: hrRoles,
	{http.MethodGet, "/employee/:id"}:         hrRoles,
	{http.MethodPost, "/employee"}:            hrRoles,
	{http.MethodPut, "/employee/:id"}:         hrRoles,
	{http.MethodDelete, "/employee/:id"}:      hrRoles,

	{http.MethodPost, "/departments"}: hrRoles,

	{http.MethodGet, "/dashboard"}: hrRoles,
}

// registerProtected wires every handler into the group with the RBAC
// middleware its policy entry prescribes. It fails when a handler has no
// policy or a policy has no handler.
func registerProtected(g *echo.Group, handlers map[routeKey]echo.HandlerFunc) error {
	for key, handler := range handlers {
		roles, ok := apiPolicies[key]
		if !ok {
			return fmt.Errorf("route %s %s has no authorization policy", key.Method, key.Path)
		}
		g.Add(key.Method, key.Path, handler, middleware.RBAC(roles...))
	}
	for key := range apiPolicies {
		if _, ok := handlers[key]; !ok {
			return fmt.Errorf("authorization policy %s %s has no handler", key.Method, key.Path)
		}
	}
	return nil
}
