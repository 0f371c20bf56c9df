package ports

import (
	"context"

	"github.com/staffhub/hr-asset-system/internal/core/domain"
)

type CreateAssetInput struct {
	Name           string `json:"name"           validate:"required"`
	Type           string `json:"type"           validate:"required"`
	SerialNumber   string `json:"serialNumber"   validate:"required"`
	Status         string `json:"status"         validate:"omitempty,oneof=AVAILABLE CHECKED_OUT"`
	AssignedUserID *int64 `json:"assignedUserId"`
}

type UpdateAssetInput struct {
	Name           *string `json:"name"           validate:"omitempty,min=1"`
	Type           *string `json:"type"           validate:"omitempty,min=1"`
	Status         *string `json:"status"         validate:"omitempty,oneof=AVAILABLE CHECKED_OUT"`
	AssignedUserID *int64  `json:"assignedUserId"`
}

type AssetService interface {
	Create(ctx context.Context, input CreateAssetInput) (*domain.Asset, error)
	Get(ctx context.Context, id int64) (*domain.Asset, error)
	List(ctx context.Context) ([]domain.Asset, error)
	Update(ctx context.Context, id int64, input UpdateAssetInput) (*domain.Asset, error)
	Delete(ctx context.Context, id int64) error
}
