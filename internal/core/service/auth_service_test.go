package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffhub/hr-asset-system/internal/core/credentials"
	"github.com/staffhub/hr-asset-system/internal/core/domain"
	"github.com/staffhub/hr-asset-system/internal/core/ports"
	"github.com/staffhub/hr-asset-system/internal/core/validation"
)

func newAuthService(users *stubUserRepo, depts *stubDeptRepo) (*AuthService, *credentials.Issuer) {
	issuer := credentials.NewIssuer("secret", time.Hour)
	return NewAuthService(users, depts, issuer, zerolog.Nop()), issuer
}

func TestAuthService_Signup_Success(t *testing.T) {
	users := newStubUserRepo()
	svc, issuer := newAuthService(users, newStubDeptRepo("none"))

	user, token, err := svc.Signup(context.Background(), ports.SignupInput{
		Email:    "alice@example.com",
		Password: "s3cret99",
	})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.Role != domain.RoleEmployee {
		t.Fatalf("expected role %s, got %s", domain.RoleEmployee, user.Role)
	}
	if user.Name != "alice" {
		t.Fatalf("expected name derived from email, got %q", user.Name)
	}
	if user.PasswordHash == "s3cret99" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret99")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != domain.RoleEmployee {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo(), newStubDeptRepo("none"))

	_, _, err := svc.Signup(context.Background(), ports.SignupInput{
		Email:    "not-an-email",
		Password: "abc",
	})

	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validation.Errors, got %v", err)
	}
	if len(errs) != 2 {
		t.Fatalf("expected 2 field errors, got %d: %v", len(errs), errs)
	}
	fields := map[string]string{}
	for _, fe := range errs {
		fields[fe.Field] = fe.Message
	}
	if fields["email"] != "must be a valid email" {
		t.Fatalf("unexpected email message: %q", fields["email"])
	}
	if fields["password"] != "must be at least 6 characters long" {
		t.Fatalf("unexpected password message: %q", fields["password"])
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	users := newStubUserRepo()
	svc, _ := newAuthService(users, newStubDeptRepo("none"))

	if _, _, err := svc.Signup(context.Background(), ports.SignupInput{Email: "bob@example.com", Password: "longenough"}); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	_, _, err := svc.Signup(context.Background(), ports.SignupInput{Email: "bob@example.com", Password: "different"})
	var errs validation.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected validation.Errors, got %v", err)
	}
	if len(errs) != 1 || errs[0].Field != "email" || errs[0].Message != "already exists" {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(users.users) != 1 {
		t.Fatalf("duplicate signup must not create a user, have %d", len(users.users))
	}
}

func TestAuthService_Signup_MissingDefaultDepartment(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo(), newStubDeptRepo())

	_, _, err := svc.Signup(context.Background(), ports.SignupInput{Email: "eve@example.com", Password: "longenough"})
	if !errors.Is(err, domain.ErrDepartmentNotFound) {
		t.Fatalf("expected wrapped ErrDepartmentNotFound, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	users := newStubUserRepo()
	svc, issuer := newAuthService(users, newStubDeptRepo("none"))

	created, _, err := svc.Signup(context.Background(), ports.SignupInput{Email: "carol@example.com", Password: "s3cret99"})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), ports.LoginInput{Email: "carol@example.com", Password: "s3cret99"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user == nil || user.ID != created.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != created.ID {
		t.Fatalf("expected claims for user %d, got %+v", created.ID, claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo(), newStubDeptRepo("none"))

	if _, _, err := svc.Signup(context.Background(), ports.SignupInput{Email: "dave@example.com", Password: "goodpass"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), ports.LoginInput{Email: "dave@example.com", Password: "badpass"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo(), newStubDeptRepo("none"))

	if _, _, err := svc.Login(context.Background(), ports.LoginInput{Email: "ghost@example.com", Password: "whatever"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
