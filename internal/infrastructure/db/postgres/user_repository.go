package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/staffhub/hr-asset-system/internal/core/domain"
	"github.com/staffhub/hr-asset-system/internal/core/ports"
)

// userColumns are the columns returned for every user read.
var userColumns = []string{
	"u.id", "u.email", "u.name", "u.password_hash", "u.role",
	"u.department_id", "u.created_at", "u.updated_at",
	"d.id", "d.name",
}

// UserRepository is the PostgreSQL implementation of ports.UserRepository.
type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user. A unique violation on email maps to
// domain.ErrEmailExists; the constraint decides races that slip past the
// service-level pre-check.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query, args, err := psql.Insert("users").
		Columns("email", "name", "password_hash", "role", "department_id").
		Values(user.Email, user.Name, user.PasswordHash, string(user.Role), user.DepartmentID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	created := *user
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, sq.Eq{"u.email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, sq.Eq{"u.id": id})
}

func (r *UserRepository) findOne(ctx context.Context, pred any) (*domain.User, error) {
	query, args, err := psql.Select(userColumns...).
		From("users u").
		Join("departments d ON d.id = u.department_id").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	query, args, err := psql.Select(userColumns...).
		From("users u").
		Join("departments d ON d.id = u.department_id").
		OrderBy("u.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// Update applies only the fields set in upd. A missing row surfaces as
// domain.ErrUserNotFound via the RETURNING clause.
func (r *UserRepository) Update(ctx context.Context, id int64, upd ports.UserUpdate) (*domain.User, error) {
	b := psql.Update("users").Set("updated_at", time.Now().UTC())
	if upd.Name != nil {
		b = b.Set("name", *upd.Name)
	}
	if upd.DepartmentID != nil {
		b = b.Set("department_id", *upd.DepartmentID)
	}
	if upd.Role != nil {
		b = b.Set("role", string(*upd.Role))
	}

	query, args, err := b.Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, email, name, password_hash, role, department_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	var user domain.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash,
		&user.Role, &user.DepartmentID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("users").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}

func (r *UserRepository) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	return r.count(ctx, sq.Eq{"role": string(role)})
}

func (r *UserRepository) count(ctx context.Context, pred any) (int64, error) {
	b := psql.Select("COUNT(*)").From("users")
	if pred != nil {
		b = b.Where(pred)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}

	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		user domain.User
		dept domain.Department
	)
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.PasswordHash, &user.Role,
		&user.DepartmentID, &user.CreatedAt, &user.UpdatedAt,
		&dept.ID, &dept.Name,
	)
	if err != nil {
		return nil, err
	}
	user.Department = &dept
	return &user, nil
}
