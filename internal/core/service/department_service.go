package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/staffhub/hr-asset-system/internal/core/domain"
	"github.com/staffhub/hr-asset-system/internal/core/ports"
	"github.com/staffhub/hr-asset-system/internal/core/validation"
)

type DepartmentService struct {
	departments ports.DepartmentRepository
	logger      zerolog.Logger
}

func NewDepartmentService(departments ports.DepartmentRepository, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{departments: departments, logger: logger}
}

func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.departments.List(ctx)
}

func (s *DepartmentService) Create(ctx context.Context, input ports.CreateDepartmentInput) (*domain.Department, error) {
	errs := validation.Struct(input)

	if input.Name != "" {
		if _, err := s.departments.FindByName(ctx, input.Name); err == nil {
			errs = errs.Add("name", "already exists")
		} else if !errors.Is(err, domain.ErrDepartmentNotFound) {
			return nil, err
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	dept, err := s.departments.Create(ctx, &domain.Department{Name: input.Name})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("department_id", dept.ID).Str("name", dept.Name).Msg("department created")
	return dept, nil
}
