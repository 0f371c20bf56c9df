package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/hr-asset-system/internal/core/domain"
	"github.com/staffhub/hr-asset-system/internal/core/ports"
)

type stubEmployeeService struct {
	getFn    func(ctx context.Context, id int64) (*domain.User, error)
	listFn   func(ctx context.Context) ([]domain.User, error)
	createFn func(ctx context.Context, actor domain.Identity, input ports.CreateEmployeeInput) (*domain.User, error)
	updateFn func(ctx context.Context, actor domain.Identity, id int64, input ports.UpdateEmployeeInput) (*domain.User, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubEmployeeService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubEmployeeService) List(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubEmployeeService) Create(ctx context.Context, actor domain.Identity, input ports.CreateEmployeeInput) (*domain.User, error) {
	return s.createFn(ctx, actor, input)
}

func (s *stubEmployeeService) Update(ctx context.Context, actor domain.Identity, id int64, input ports.UpdateEmployeeInput) (*domain.User, error) {
	return s.updateFn(ctx, actor, id, input)
}

func (s *stubEmployeeService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func TestEmployeeHandler_Create_PassesActor(t *testing.T) {
	e := echo.New()
	stub := &stubEmployeeService{
		createFn: func(_ context.Context, actor domain.Identity, input ports.CreateEmployeeInput) (*domain.User, error) {
			if actor.ID != 2 || actor.Role != domain.RoleSuperAdmin {
				t.Fatalf("unexpected actor: %+v", actor)
			}
			return &domain.User{ID: 10, Email: input.Email, Name: input.Name, Role: domain.RoleEmployee}, nil
		},
	}
	h := NewEmployeeHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/api/employee", `{"name":"Frank","email":"frank@example.com","password":"longenough"}`)
	c.Set("identity", domain.Identity{ID: 2, Role: domain.RoleSuperAdmin})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	employee, ok := resp["employee"].(map[string]any)
	if !ok || employee["email"] != "frank@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestEmployeeHandler_Create_MissingIdentity(t *testing.T) {
	e := echo.New()
	stub := &stubEmployeeService{
		createFn: func(context.Context, domain.Identity, ports.CreateEmployeeInput) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewEmployeeHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/api/employee", `{}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestEmployeeHandler_Update_RoleAssignmentPassThrough(t *testing.T) {
	e := echo.New()
	stub := &stubEmployeeService{
		updateFn: func(context.Context, domain.Identity, int64, ports.UpdateEmployeeInput) (*domain.User, error) {
			return nil, domain.ErrRoleAssignment
		},
	}
	h := NewEmployeeHandler(stub)

	c, _ := newJSONContext(e, http.MethodPut, "/api/employee/4", `{"role":"SUPER_ADMIN"}`)
	c.Set("identity", domain.Identity{ID: 1, Role: domain.RoleHRManager})
	c.SetParamNames("id")
	c.SetParamValues("4")

	if err := h.Update(c); !errors.Is(err, domain.ErrRoleAssignment) {
		t.Fatalf("expected ErrRoleAssignment, got %v", err)
	}
}

func TestEmployeeHandler_Get_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubEmployeeService{
		getFn: func(context.Context, int64) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/employee/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestEmployeeHandler_Delete_NoContent(t *testing.T) {
	e := echo.New()
	deleted := int64(0)
	stub := &stubEmployeeService{
		deleteFn: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	h := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/employee/6", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("6")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != 6 {
		t.Fatalf("expected delete of id 6, got %d", deleted)
	}
}

func TestEmployeeHandler_List(t *testing.T) {
	e := echo.New()
	stub := &stubEmployeeService{
		listFn: func(context.Context) ([]domain.User, error) {
			return []domain.User{{ID: 1, Email: "a@example.com"}}, nil
		},
	}
	h := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/employee", nil)
	rec := httptest.NewRecorder()
	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Employees []domain.User `json:"employees"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Employees) != 1 {
		t.Fatalf("expected 1 employee, got %d", len(resp.Employees))
	}
}
