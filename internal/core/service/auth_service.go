package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/staffhub/hr-asset-system/internal/core/credentials"
	"github.com/staffhub/hr-asset-system/internal/core/domain"
	"github.com/staffhub/hr-asset-system/internal/core/ports"
	"github.com/staffhub/hr-asset-system/internal/core/validation"
)

// defaultDepartment is the seeded department fresh signups land in.
const defaultDepartment = "none"

// AuthService implements signup and login.
type AuthService struct {
	users       ports.UserRepository
	departments ports.DepartmentRepository
	issuer      *credentials.Issuer
	logger      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, departments ports.DepartmentRepository, issuer *credentials.Issuer, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, departments: departments, issuer: issuer, logger: logger}
}

// Signup validates the payload, creates an EMPLOYEE user in the default
// department, and returns the record with a signed token. All violated
// rules come back in one validation.Errors batch. The email pre-check is
// advisory only: the unique constraint on users.email decides races, and
// its violation surfaces through the same "already exists" response.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.User, string, error) {
	errs := validation.Struct(input)
	if input.Email != "" {
		if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
			errs = errs.Add("email", "already exists")
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", err
		}
	}
	if len(errs) > 0 {
		return nil, "", errs
	}

	hash, err := credentials.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	dept, err := s.departments.FindByName(ctx, defaultDepartment)
	if err != nil {
		if errors.Is(err, domain.ErrDepartmentNotFound) {
			return nil, "", fmt.Errorf("default department %q is not seeded: %w", defaultDepartment, err)
		}
		return nil, "", err
	}

	user, err := s.users.Create(ctx, &domain.User{
		Email:        input.Email,
		Name:         strings.SplitN(input.Email, "@", 2)[0],
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
		DepartmentID: dept.ID,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Int64("user_id", user.ID).Str("email", user.Email).Msg("user signed up")
	return user, token, nil
}

// Login verifies credentials against the stored hash and issues a token
// carrying the user's id and role.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (string, *domain.User, error) {
	if errs := validation.Struct(input); len(errs) > 0 {
		return "", nil, errs
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return "", nil, err
	}

	if !credentials.CheckPassword(input.Password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}
