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

var assetColumns = []string{
	"a.id", "a.name", "a.type", "a.serial_number", "a.status",
	"a.assigned_user_id", "a.created_at", "a.updated_at",
	"u.id", "u.email", "u.name", "u.role",
}

// AssetRepository is the PostgreSQL implementation of ports.AssetRepository.
type AssetRepository struct {
	db *DB
}

func NewAssetRepository(db *DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create inserts an asset. A unique violation on serial_number maps to
// domain.ErrSerialNumberExists.
func (r *AssetRepository) Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	query, args, err := psql.Insert("assets").
		Columns("name", "type", "serial_number", "status", "assigned_user_id").
		Values(asset.Name, asset.Type, asset.SerialNumber, string(asset.Status), asset.AssignedUserID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	created := *asset
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrSerialNumberExists
		}
		return nil, fmt.Errorf("insert asset: %w", err)
	}
	return &created, nil
}

func (r *AssetRepository) FindByID(ctx context.Context, id int64) (*domain.Asset, error) {
	return r.findOne(ctx, sq.Eq{"a.id": id})
}

func (r *AssetRepository) FindBySerialNumber(ctx context.Context, serial string) (*domain.Asset, error) {
	return r.findOne(ctx, sq.Eq{"a.serial_number": serial})
}

func (r *AssetRepository) findOne(ctx context.Context, pred any) (*domain.Asset, error) {
	query, args, err := psql.Select(assetColumns...).
		From("assets a").
		LeftJoin("users u ON u.id = a.assigned_user_id").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, err
	}

	asset, err := scanAsset(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, fmt.Errorf("find asset: %w", err)
	}
	return asset, nil
}

func (r *AssetRepository) List(ctx context.Context) ([]domain.Asset, error) {
	query, args, err := psql.Select(assetColumns...).
		From("assets a").
		LeftJoin("users u ON u.id = a.assigned_user_id").
		OrderBy("a.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	var assets []domain.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		assets = append(assets, *asset)
	}
	return assets, rows.Err()
}

// Update applies only the fields set in upd.
func (r *AssetRepository) Update(ctx context.Context, id int64, upd ports.AssetUpdate) (*domain.Asset, error) {
	b := psql.Update("assets").Set("updated_at", time.Now().UTC())
	if upd.Name != nil {
		b = b.Set("name", *upd.Name)
	}
	if upd.Type != nil {
		b = b.Set("type", *upd.Type)
	}
	if upd.Status != nil {
		b = b.Set("status", string(*upd.Status))
	}
	if upd.AssignedUserID != nil {
		b = b.Set("assigned_user_id", *upd.AssignedUserID)
	}

	query, args, err := b.Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, type, serial_number, status, assigned_user_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	var asset domain.Asset
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&asset.ID, &asset.Name, &asset.Type, &asset.SerialNumber,
		&asset.Status, &asset.AssignedUserID, &asset.CreatedAt, &asset.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, fmt.Errorf("update asset: %w", err)
	}
	return &asset, nil
}

func (r *AssetRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete("assets").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

func (r *AssetRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}

func (r *AssetRepository) CountByStatus(ctx context.Context, status domain.AssetStatus) (int64, error) {
	return r.count(ctx, sq.Eq{"status": string(status)})
}

func (r *AssetRepository) count(ctx context.Context, pred any) (int64, error) {
	b := psql.Select("COUNT(*)").From("assets")
	if pred != nil {
		b = b.Where(pred)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}

	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count assets: %w", err)
	}
	return n, nil
}

// UnassignUser clears assigned_user_id on every asset held by the user.
func (r *AssetRepository) UnassignUser(ctx context.Context, userID int64) error {
	query, args, err := psql.Update("assets").
		Set("assigned_user_id", nil).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"assigned_user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("unassign assets: %w", err)
	}
	return nil
}

func scanAsset(row rowScanner) (*domain.Asset, error) {
	var (
		asset     domain.Asset
		userID    sql.NullInt64
		userEmail sql.NullString
		userName  sql.NullString
		userRole  sql.NullString
	)
	err := row.Scan(
		&asset.ID, &asset.Name, &asset.Type, &asset.SerialNumber, &asset.Status,
		&asset.AssignedUserID, &asset.CreatedAt, &asset.UpdatedAt,
		&userID, &userEmail, &userName, &userRole,
	)
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		asset.AssignedUser = &domain.User{
			ID:    userID.Int64,
			Email: userEmail.String,
			Name:  userName.String,
			Role:  domain.Role(userRole.String),
		}
	}
	return &asset, nil
}
