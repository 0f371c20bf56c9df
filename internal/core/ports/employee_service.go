package ports

import (
	"context"

	"github.com/staffhub/hr-asset-system/internal/core/domain"
)

type CreateEmployeeInput struct {
	Name         string `json:"name"         validate:"required"`
	Email        string `json:"email"        validate:"required,email"`
	Password     string `json:"password"     validate:"required,min=6"`
	DepartmentID *int64 `json:"departmentId"`
	Role         string `json:"role"         validate:"omitempty,oneof=EMPLOYEE HR_MANAGER SUPER_ADMIN"`
}

type UpdateEmployeeInput struct {
	Name         *string `json:"name"         validate:"omitempty,min=1"`
	DepartmentID *int64  `json:"departmentId"`
	Role         *string `json:"role"         validate:"omitempty,oneof=EMPLOYEE HR_MANAGER SUPER_ADMIN"`
}

type EmployeeService interface {
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, actor domain.Identity, input CreateEmployeeInput) (*domain.User, error)
	Update(ctx context.Context, actor domain.Identity, id int64, input UpdateEmployeeInput) (*domain.User, error)
	// Delete removes the employee after unassigning their assets.
	Delete(ctx context.Context, id int64) error
}

type CreateDepartmentInput struct {
	Name string `json:"name" validate:"required"`
}

type DepartmentService interface {
	List(ctx context.Context) ([]domain.Department, error)
	Create(ctx context.Context, input CreateDepartmentInput) (*domain.Department, error)
}
