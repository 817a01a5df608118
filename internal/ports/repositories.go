package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/FahadAljabr/arms/internal/domain"
)

// AssetRepository defines persistence operations for fleet assets
type AssetRepository interface {
	Save(ctx context.Context, asset *domain.Asset) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error)
	FindAll(ctx context.Context, filters map[string]interface{}) ([]*domain.Asset, error)
	Update(ctx context.Context, asset *domain.Asset) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MaintenancePlanRepository defines persistence operations for maintenance plans
type MaintenancePlanRepository interface {
	Save(ctx context.Context, plan *domain.MaintenancePlan) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.MaintenancePlan, error)
	FindByAssetID(ctx context.Context, assetID uuid.UUID) (*domain.MaintenancePlan, error)
	FindAll(ctx context.Context) ([]*domain.MaintenancePlan, error)
	Update(ctx context.Context, plan *domain.MaintenancePlan) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MaintenanceRecordRepository defines persistence operations for maintenance records
type MaintenanceRecordRepository interface {
	Save(ctx context.Context, record *domain.MaintenanceRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceRecord, error)
	FindByAssetID(ctx context.Context, assetID uuid.UUID) ([]*domain.MaintenanceRecord, error)
	FindAll(ctx context.Context, filters map[string]interface{}) ([]*domain.MaintenanceRecord, error)
	Update(ctx context.Context, record *domain.MaintenanceRecord) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Junction table for parts consumed by a record
	AddRecordPart(ctx context.Context, part *domain.RecordPart) error
	FindRecordParts(ctx context.Context, recordID uuid.UUID) ([]*domain.RecordPart, error)
}

// SparePartRepository defines persistence operations for spare-part inventory
type SparePartRepository interface {
	Save(ctx context.Context, part *domain.SparePart) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.SparePart, error)
	FindAll(ctx context.Context) ([]*domain.SparePart, error)
	Update(ctx context.Context, part *domain.SparePart) error
	Delete(ctx context.Context, id uuid.UUID) error
}
