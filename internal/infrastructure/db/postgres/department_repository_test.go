package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/staffhub/hr-asset-system/internal/core/domain"
)

func TestDepartmentRepository_Create_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDepartmentRepository(db)

	mock.ExpectQuery("INSERT INTO departments").
		WithArgs("Engineering").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	created, err := repo.Create(context.Background(), &domain.Department{Name: "Engineering"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 2 || created.Name != "Engineering" {
		t.Fatalf("unexpected department: %+v", created)
	}
}

func TestDepartmentRepository_Create_UniqueViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDepartmentRepository(db)

	mock.ExpectQuery("INSERT INTO departments").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), &domain.Department{Name: "Engineering"})
	if !errors.Is(err, domain.ErrDepartmentExists) {
		t.Fatalf("expected ErrDepartmentExists, got %v", err)
	}
}

func TestDepartmentRepository_FindByName_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDepartmentRepository(db)

	mock.ExpectQuery("SELECT id, name FROM departments").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.FindByName(context.Background(), "missing"); !errors.Is(err, domain.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestDepartmentRepository_List(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewDepartmentRepository(db)

	mock.ExpectQuery("SELECT id, name FROM departments").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "none").
			AddRow(2, "Engineering"))

	departments, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(departments) != 2 || departments[0].Name != "none" {
		t.Fatalf("unexpected departments: %+v", departments)
	}
}
