package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/staffhub/hr-asset-system/internal/core/domain"
)

// DepartmentRepository is the PostgreSQL implementation of
// ports.DepartmentRepository.
type DepartmentRepository struct {
	db *DB
}

func NewDepartmentRepository(db *DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create inserts a department. A unique violation on name maps to
// domain.ErrDepartmentExists.
func (r *DepartmentRepository) Create(ctx context.Context, dept *domain.Department) (*domain.Department, error) {
	query, args, err := psql.Insert("departments").
		Columns("name").
		Values(dept.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, err
	}

	created := *dept
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&created.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDepartmentExists
		}
		return nil, fmt.Errorf("insert department: %w", err)
	}
	return &created, nil
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id int64) (*domain.Department, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *DepartmentRepository) FindByName(ctx context.Context, name string) (*domain.Department, error) {
	return r.findOne(ctx, sq.Eq{"name": name})
}

func (r *DepartmentRepository) findOne(ctx context.Context, pred any) (*domain.Department, error) {
	query, args, err := psql.Select("id", "name").From("departments").Where(pred).ToSql()
	if err != nil {
		return nil, err
	}

	var dept domain.Department
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&dept.ID, &dept.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("find department: %w", err)
	}
	return &dept, nil
}

func (r *DepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	query, args, err := psql.Select("id", "name").From("departments").OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var departments []domain.Department
	for rows.Next() {
		var dept domain.Department
		if err := rows.Scan(&dept.ID, &dept.Name); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		departments = append(departments, dept)
	}
	return departments, rows.Err()
}
