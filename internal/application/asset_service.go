package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/FahadAljabr/arms/internal/domain"
	"github.com/FahadAljabr/arms/internal/ports"
)

// AssetService handles the business logic for fleet assets
type AssetService struct {
	assetRepo ports.AssetRepository
}

// NewAssetService creates a new AssetService instance
func NewAssetService(assetRepo ports.AssetRepository) *AssetService {
	return &AssetService{
		assetRepo: assetRepo,
	}
}

// RegisterAsset registers a new asset in the fleet
func (s *AssetService) RegisterAsset(ctx context.Context, assetUID string, assetType domain.AssetType, model string, sector domain.Sector, currentKm *int, commissionedAt *time.Time) (*domain.Asset, error) {
	if assetUID == "" {
		return nil, errors.New("asset uid is required")
	}
	if !validAssetType(assetType) {
		return nil, errors.New("unknown asset type")
	}
	if !validSector(sector) {
		return nil, errors.New("unknown sector")
	}

	// Check whether the UID is already taken
	existing, err := s.assetRepo.FindAll(ctx, map[string]interface{}{
		"asset_uid": assetUID,
	})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, errors.New("asset with this uid already exists")
	}

	now := time.Now()
	asset := &domain.Asset{
		ID:             uuid.New(),
		AssetUID:       assetUID,
		AssetType:      assetType,
		Model:          model,
		Status:         domain.AssetStatusOperational,
		Sector:         sector,
		CurrentKm:      currentKm,
		CommissionedAt: commissionedAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.assetRepo.Save(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

// UpdateAssetStatus moves an asset between operational states. Decommissioning
// stamps DecommissionedAt; the stamp is kept if the asset is later restored.
func (s *AssetService) UpdateAssetStatus(ctx context.Context, assetID uuid.UUID, status domain.AssetStatus) (*domain.Asset, error) {
	if !validAssetStatus(status) {
		return nil, errors.New("unknown asset status")
	}

	asset, err := s.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	asset.Status = status
	if status == domain.AssetStatusDecommissioned && asset.DecommissionedAt == nil {
		asset.DecommissionedAt = &now
	}
	asset.UpdatedAt = now

	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

// UpdateAsset applies mutable asset fields. Nil pointers leave the stored
// value untouched.
func (s *AssetService) UpdateAsset(ctx context.Context, assetID uuid.UUID, model *string, currentKm *int, lastServiceAt *time.Time) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		return nil, err
	}

	if model != nil {
		asset.Model = *model
	}
	if currentKm != nil {
		if *currentKm < 0 {
			return nil, errors.New("current km cannot be negative")
		}
		asset.CurrentKm = currentKm
	}
	if lastServiceAt != nil {
		asset.LastServiceAt = lastServiceAt
	}
	asset.UpdatedAt = time.Now()

	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

// GetAssetByID fetches an asset by ID
func (s *AssetService) GetAssetByID(ctx context.Context, assetID uuid.UUID) (*domain.Asset, error) {
	return s.assetRepo.FindByID(ctx, assetID)
}

// ListAssets fetches all assets, optionally filtered
func (s *AssetService) ListAssets(ctx context.Context, filters map[string]interface{}) ([]*domain.Asset, error) {
	return s.assetRepo.FindAll(ctx, filters)
}

// DeleteAsset removes an asset from the registry
func (s *AssetService) DeleteAsset(ctx context.Context, assetID uuid.UUID) error {
	return s.assetRepo.Delete(ctx, assetID)
}

func validAssetType(t domain.AssetType) bool {
	switch t {
	case domain.AssetTypePatrolCar, domain.AssetTypeArmoredVehicle,
		domain.AssetTypePistol, domain.AssetTypeRifle, domain.AssetTypeShotgun,
		domain.AssetTypeSubmachineGun, domain.AssetTypeSniperRifle, domain.AssetTypeOther:
		return true
	}
	return false
}

func validSector(s domain.Sector) bool {
	switch s {
	case domain.SectorPolice, domain.SectorTrafficPolice, domain.SectorMilitaryPolice:
		return true
	}
	return false
}

func validAssetStatus(s domain.AssetStatus) bool {
	switch s {
	case domain.AssetStatusOperational, domain.AssetStatusInMaintenance, domain.AssetStatusDecommissioned:
		return true
	}
	return false
}
