package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/staffhub/hr-asset-system/internal/core/credentials"
	"github.com/staffhub/hr-asset-system/internal/core/domain"
	"github.com/staffhub/hr-asset-system/internal/core/ports"
	"github.com/staffhub/hr-asset-system/internal/core/validation"
)

// EmployeeService implements employee CRUD. Employees are user records;
// role changes are restricted: only a SUPER_ADMIN actor may grant
// HR_MANAGER or SUPER_ADMIN.
type EmployeeService struct {
	users       ports.UserRepository
	assets      ports.AssetRepository
	departments ports.DepartmentRepository
	logger      zerolog.Logger
}

func NewEmployeeService(users ports.UserRepository, assets ports.AssetRepository, departments ports.DepartmentRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{users: users, assets: assets, departments: departments, logger: logger}
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *EmployeeService) Create(ctx context.Context, actor domain.Identity, input ports.CreateEmployeeInput) (*domain.User, error) {
	errs := validation.Struct(input)

	if input.Email != "" {
		if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
			errs = errs.Add("email", "already exists")
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	deptID, err := s.resolveDepartment(ctx, input.DepartmentID, &errs)
	if err != nil {
		return nil, err
	}

	if len(errs) > 0 {
		return nil, errs
	}

	role := domain.Role(input.Role)
	if role == "" {
		role = domain.RoleEmployee
	}
	if err := checkRoleGrant(actor, role); err != nil {
		return nil, err
	}

	hash, err := credentials.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &domain.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         role,
		DepartmentID: deptID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("employee_id", user.ID).Int64("actor_id", actor.ID).Msg("employee created")
	return user, nil
}

func (s *EmployeeService) Update(ctx context.Context, actor domain.Identity, id int64, input ports.UpdateEmployeeInput) (*domain.User, error) {
	errs := validation.Struct(input)

	if input.DepartmentID != nil {
		if _, err := s.departments.FindByID(ctx, *input.DepartmentID); err != nil {
			if errors.Is(err, domain.ErrDepartmentNotFound) {
				errs = errs.Add("departmentId", "department does not exist")
			} else {
				return nil, err
			}
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	upd := ports.UserUpdate{Name: input.Name, DepartmentID: input.DepartmentID}
	if input.Role != nil {
		role := domain.Role(*input.Role)
		if err := checkRoleGrant(actor, role); err != nil {
			return nil, err
		}
		upd.Role = &role
	}

	user, err := s.users.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("employee_id", id).Int64("actor_id", actor.ID).Msg("employee updated")
	return user, nil
}

// Delete unassigns the employee's assets before removing the record, so no
// asset is left pointing at a missing user.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.assets.UnassignUser(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("employee_id", id).Msg("employee deleted")
	return nil
}

func checkRoleGrant(actor domain.Identity, role domain.Role) error {
	if role == domain.RoleHRManager || role == domain.RoleSuperAdmin {
		if actor.Role != domain.RoleSuperAdmin {
			return domain.ErrRoleAssignment
		}
	}
	return nil
}

func (s *EmployeeService) resolveDepartment(ctx context.Context, deptID *int64, errs *validation.Errors) (int64, error) {
	if deptID == nil {
		dept, err := s.departments.FindByName(ctx, defaultDepartment)
		if err != nil {
			return 0, err
		}
		return dept.ID, nil
	}
	if _, err := s.departments.FindByID(ctx, *deptID); err != nil {
		if errors.Is(err, domain.ErrDepartmentNotFound) {
			*errs = errs.Add("departmentId", "department does not exist")
			return 0, nil
		}
		return 0, err
	}
	return *deptID, nil
}
