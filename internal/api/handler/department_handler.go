package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/hr-asset-system/internal/core/domain"
	"github.com/staffhub/hr-asset-system/internal/core/ports"
)

type DepartmentHandler struct {
	service ports.DepartmentService
}

func NewDepartmentHandler(service ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

type departmentResponse struct {
	Department *domain.Department `json:"department"`
}

type departmentListResponse struct {
	Departments []domain.Department `json:"departments"`
}

// List handles GET /api/employee/departments.
//
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  departmentListResponse
// @Router       /api/employee/departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	departments, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, departmentListResponse{Departments: departments})
}

// Create handles POST /api/departments.
//
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      ports.CreateDepartmentInput  true  "Department fields"
// @Success      201   {object}  departmentResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/departments [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	var req ports.CreateDepartmentInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	dept, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, departmentResponse{Department: dept})
}
