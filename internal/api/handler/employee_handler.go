package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/hr-asset-system/internal/core/domain"
	"github.com/staffhub/hr-asset-system/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee operations.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type employeeResponse struct {
	Employee *domain.User `json:"employee"`
}

type employeeListResponse struct {
	Employees []domain.User `json:"employees"`
}

// List handles GET /api/employee.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  employeeListResponse
// @Router       /api/employee [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employeeListResponse{Employees: employees})
}

// Get handles GET /api/employee/:id.
//
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Employee id"
// @Success      200  {object}  employeeResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/employee/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	employee, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employeeResponse{Employee: employee})
}

// Create handles POST /api/employee.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.CreateEmployeeInput  true  "Employee fields"
// @Success      201   {object}  employeeResponse
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]string
// @Router       /api/employee [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}

	var req ports.CreateEmployeeInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	employee, err := h.service.Create(c.Request().Context(), identity, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, employeeResponse{Employee: employee})
}

// Update handles PUT /api/employee/:id. Assigning HR_MANAGER or
// SUPER_ADMIN requires a SUPER_ADMIN actor.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                        true  "Employee id"
// @Param        body  body      ports.UpdateEmployeeInput  true  "Fields to change"
// @Success      200   {object}  employeeResponse
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/employee/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	identity, err := actor(c)
	if err != nil {
		return err
	}

	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req ports.UpdateEmployeeInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	employee, err := h.service.Update(c.Request().Context(), identity, id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employeeResponse{Employee: employee})
}

// Delete handles DELETE /api/employee/:id. The employee's assets are
// unassigned first.
//
// @Summary      Delete an employee
// @Tags         employees
// @Security     BearerAuth
// @Param        id  path  int  true  "Employee id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/employee/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
