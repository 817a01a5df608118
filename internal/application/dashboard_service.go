package application

import (
	"context"
	"errors"
	"time"

	"github.com/FahadAljabr/arms/internal/domain"
	"github.com/FahadAljabr/arms/internal/ports"
	"github.com/FahadAljabr/arms/pkg/readiness"
)

// AssetClass selects which slice of the fleet a dashboard view covers
type AssetClass string

const (
	ClassAll      AssetClass = "all"
	ClassVehicles AssetClass = "vehicles"
	ClassWeapons  AssetClass = "weapons"
)

// DashboardService assembles the readiness snapshots served to the dashboard.
// It loads current collections from the repositories, converts them to the
// engine's input shapes and evaluates them against a single reference time.
type DashboardService struct {
	assetRepo  ports.AssetRepository
	planRepo   ports.MaintenancePlanRepository
	recordRepo ports.MaintenanceRecordRepository
	partRepo   ports.SparePartRepository
	thresholds readiness.Thresholds
	now        func() time.Time
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(
	assetRepo ports.AssetRepository,
	planRepo ports.MaintenancePlanRepository,
	recordRepo ports.MaintenanceRecordRepository,
	partRepo ports.SparePartRepository,
	thresholds readiness.Thresholds,
) *DashboardService {
	return &DashboardService{
		assetRepo:  assetRepo,
		planRepo:   planRepo,
		recordRepo: recordRepo,
		partRepo:   partRepo,
		thresholds: thresholds,
		now:        time.Now,
	}
}

// Alerts computes the current alert set over the whole fleet
func (s *DashboardService) Alerts(ctx context.Context) (readiness.AlertSet, error) {
	assets, plans, records, parts, err := s.loadSnapshot(ctx)
	if err != nil {
		return readiness.AlertSet{}, err
	}

	return s.thresholds.ComputeAlerts(plans, assets, records, parts, s.now()), nil
}

// SectorStats computes per-sector fleet statistics for the selected class
func (s *DashboardService) SectorStats(ctx context.Context, class AssetClass) ([]readiness.SectorStat, error) {
	assets, err := s.loadAssets(ctx, class)
	if err != nil {
		return nil, err
	}

	return s.thresholds.ComputeSectorStats(assets, s.now()), nil
}

// Performance computes completion statistics over the trailing week,
// month-to-date and year-to-date windows. slaHours <= 0 falls back to the
// engine default.
func (s *DashboardService) Performance(ctx context.Context, slaHours float64) (readiness.PerformanceStats, error) {
	domainRecords, err := s.recordRepo.FindAll(ctx, nil)
	if err != nil {
		return readiness.PerformanceStats{}, err
	}

	return s.thresholds.ComputePerformance(toEngineRecords(domainRecords), s.now(), slaHours), nil
}

// Overview computes the headline fleet counters
func (s *DashboardService) Overview(ctx context.Context) (readiness.Overview, error) {
	domainAssets, err := s.assetRepo.FindAll(ctx, nil)
	if err != nil {
		return readiness.Overview{}, err
	}

	domainPlans, err := s.planRepo.FindAll(ctx)
	if err != nil {
		return readiness.Overview{}, err
	}

	return s.thresholds.ComputeOverview(toEngineAssets(domainAssets, ClassAll), toEnginePlans(domainPlans), s.now()), nil
}

// Recency summarizes how recently the selected class has been serviced
func (s *DashboardService) Recency(ctx context.Context, class AssetClass) (readiness.RecencySummary, error) {
	assets, err := s.loadAssets(ctx, class)
	if err != nil {
		return readiness.RecencySummary{}, err
	}

	return s.thresholds.SummarizeServiceRecency(assets, s.now()), nil
}

func (s *DashboardService) loadSnapshot(ctx context.Context) ([]readiness.Asset, []readiness.Plan, []readiness.Record, []readiness.SparePart, error) {
	domainAssets, err := s.assetRepo.FindAll(ctx, nil)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	domainPlans, err := s.planRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	domainRecords, err := s.recordRepo.FindAll(ctx, nil)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	domainParts, err := s.partRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return toEngineAssets(domainAssets, ClassAll), toEnginePlans(domainPlans), toEngineRecords(domainRecords), toEngineParts(domainParts), nil
}

func (s *DashboardService) loadAssets(ctx context.Context, class AssetClass) ([]readiness.Asset, error) {
	if class != ClassAll && class != ClassVehicles && class != ClassWeapons {
		return nil, errors.New("unknown asset class")
	}

	domainAssets, err := s.assetRepo.FindAll(ctx, nil)
	if err != nil {
		return nil, err
	}

	return toEngineAssets(domainAssets, class), nil
}

// toEngineAssets converts stored assets to engine inputs, keeping only the
// selected class
func toEngineAssets(assets []*domain.Asset, class AssetClass) []readiness.Asset {
	converted := make([]readiness.Asset, 0, len(assets))
	for _, a := range assets {
		t := readiness.AssetType(a.AssetType)
		switch class {
		case ClassVehicles:
			if !t.IsVehicle() {
				continue
			}
		case ClassWeapons:
			if !t.IsWeapon() {
				continue
			}
		}

		converted = append(converted, readiness.Asset{
			ID:             a.ID,
			AssetType:      t,
			Status:         readiness.AssetStatus(a.Status),
			Sector:         readiness.Sector(a.Sector),
			CurrentKm:      a.CurrentKm,
			CommissionedAt: a.CommissionedAt,
			LastServiceAt:  a.LastServiceAt,
		})
	}
	return converted
}

func toEnginePlans(plans []*domain.MaintenancePlan) []readiness.Plan {
	converted := make([]readiness.Plan, 0, len(plans))
	for _, p := range plans {
		converted = append(converted, readiness.Plan{
			AssetID:     p.AssetID,
			NextDueDate: p.NextDueDate,
			Description: p.PlanDescription,
		})
	}
	return converted
}

func toEngineRecords(records []*domain.MaintenanceRecord) []readiness.Record {
	converted := make([]readiness.Record, 0, len(records))
	for _, r := range records {
		converted = append(converted, readiness.Record{
			AssetID:        r.AssetID,
			IssueDate:      r.IssueDate,
			CompletionDate: r.CompletionDate,
			Status:         readiness.RecordStatus(r.Status),
		})
	}
	return converted
}

func toEngineParts(parts []*domain.SparePart) []readiness.SparePart {
	converted := make([]readiness.SparePart, 0, len(parts))
	for _, p := range parts {
		converted = append(converted, readiness.SparePart{
			QuantityOnHand:   p.QuantityOnHand,
			ReorderThreshold: p.ReorderThreshold,
		})
	}
	return converted
}
