package ports

import (
	"context"

	"github.com/staffhub/hr-asset-system/internal/core/domain"
)

// AssetUpdate carries the optional fields of an asset update. Nil means
// "leave unchanged".
type AssetUpdate struct {
	Name           *string
	Type           *string
	Status         *domain.AssetStatus
	AssignedUserID *int64
}

// AssetRepository is the persistence contract for assets. Lookups return
// domain.ErrAssetNotFound for absent rows; Create surfaces a
// unique-constraint violation on serial_number as
// domain.ErrSerialNumberExists.
type AssetRepository interface {
	Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error)
	FindByID(ctx context.Context, id int64) (*domain.Asset, error)
	FindBySerialNumber(ctx context.Context, serial string) (*domain.Asset, error)
	List(ctx context.Context) ([]domain.Asset, error)
	Update(ctx context.Context, id int64, upd AssetUpdate) (*domain.Asset, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.AssetStatus) (int64, error)
	// UnassignUser clears assigned_user_id on every asset held by the user.
	// Used before an employee record is deleted.
	UnassignUser(ctx context.Context, userID int64) error
}
