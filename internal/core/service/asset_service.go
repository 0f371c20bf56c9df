package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/staffhub/hr-asset-system/internal/core/domain"
	"github.com/staffhub/hr-asset-system/internal/core/ports"
	"github.com/staffhub/hr-asset-system/internal/core/validation"
)

// AssetService implements asset CRUD with validation.
type AssetService struct {
	assets ports.AssetRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewAssetService(assets ports.AssetRepository, users ports.UserRepository, logger zerolog.Logger) *AssetService {
	return &AssetService{assets: assets, users: users, logger: logger}
}

// Create validates all field rules (tag rules plus serial uniqueness and
// assigned-user existence) and persists the asset. The full batch of
// violations is returned together; nothing is written when it is non-empty.
// Status defaults to AVAILABLE. The serial pre-check is advisory; the
// unique constraint on assets.serial_number is authoritative.
func (s *AssetService) Create(ctx context.Context, input ports.CreateAssetInput) (*domain.Asset, error) {
	errs := validation.Struct(input)

	if input.SerialNumber != "" {
		if _, err := s.assets.FindBySerialNumber(ctx, input.SerialNumber); err == nil {
			errs = errs.Add("serialNumber", "already exists")
		} else if !errors.Is(err, domain.ErrAssetNotFound) {
			return nil, err
		}
	}

	if input.AssignedUserID != nil {
		if err := s.checkAssignedUser(ctx, *input.AssignedUserID, &errs); err != nil {
			return nil, err
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	status := domain.AssetStatus(input.Status)
	if status == "" {
		status = domain.AssetAvailable
	}

	asset, err := s.assets.Create(ctx, &domain.Asset{
		Name:           input.Name,
		Type:           input.Type,
		SerialNumber:   input.SerialNumber,
		Status:         status,
		AssignedUserID: input.AssignedUserID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("asset_id", asset.ID).Str("serial_number", asset.SerialNumber).Msg("asset created")
	return asset, nil
}

func (s *AssetService) Get(ctx context.Context, id int64) (*domain.Asset, error) {
	return s.assets.FindByID(ctx, id)
}

func (s *AssetService) List(ctx context.Context) ([]domain.Asset, error) {
	return s.assets.List(ctx)
}

// Update treats every field as optional; format and lookup rules still run
// for the fields that are present.
func (s *AssetService) Update(ctx context.Context, id int64, input ports.UpdateAssetInput) (*domain.Asset, error) {
	errs := validation.Struct(input)

	if input.AssignedUserID != nil {
		if err := s.checkAssignedUser(ctx, *input.AssignedUserID, &errs); err != nil {
			return nil, err
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.assets.FindByID(ctx, id); err != nil {
		return nil, err
	}

	upd := ports.AssetUpdate{
		Name:           input.Name,
		Type:           input.Type,
		AssignedUserID: input.AssignedUserID,
	}
	if input.Status != nil {
		status := domain.AssetStatus(*input.Status)
		upd.Status = &status
	}

	asset, err := s.assets.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("asset_id", id).Msg("asset updated")
	return asset, nil
}

func (s *AssetService) Delete(ctx context.Context, id int64) error {
	if _, err := s.assets.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.assets.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("asset_id", id).Msg("asset deleted")
	return nil
}

func (s *AssetService) checkAssignedUser(ctx context.Context, userID int64, errs *validation.Errors) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			*errs = errs.Add("assignedUserId", "assigned user does not exist")
			return nil
		}
		return err
	}
	return nil
}
