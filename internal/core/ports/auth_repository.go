package ports

import (
	"context"

	"github.com/staffhub/hr-asset-system/internal/core/domain"
)

// UserUpdate carries the optional fields of an employee update. Nil means
// "leave unchanged".
type UserUpdate struct {
	Name         *string
	DepartmentID *int64
	Role         *domain.Role
}

// UserRepository is the persistence contract for user/employee records.
// Lookups return domain.ErrUserNotFound for absent rows; Create surfaces a
// unique-constraint violation on email as domain.ErrEmailExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, upd UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}

// DepartmentRepository is the persistence contract for departments.
// FindByName/FindByID return domain.ErrDepartmentNotFound for absent rows;
// Create surfaces a duplicate name as domain.ErrDepartmentExists.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) (*domain.Department, error)
	FindByID(ctx context.Context, id int64) (*domain.Department, error)
	FindByName(ctx context.Context, name string) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
}
