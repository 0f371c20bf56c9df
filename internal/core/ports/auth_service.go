package ports

import (
	"context"

	"github.com/staffhub/hr-asset-system/internal/core/domain"
)

type SignupInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthService interface {
	// Signup creates an EMPLOYEE user in the default department and returns
	// the record together with a signed token.
	Signup(ctx context.Context, input SignupInput) (*domain.User, string, error)
	// Login verifies credentials and returns a signed token and the user.
	Login(ctx context.Context, input LoginInput) (string, *domain.User, error)
}
