package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FahadAljabr/arms/internal/domain"
	"github.com/FahadAljabr/arms/pkg/readiness"
)

var dashNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestDashboardService(assets *fakeAssetRepo, plans *fakePlanRepo, records *fakeRecordRepo, parts *fakePartRepo) *DashboardService {
	svc := NewDashboardService(assets, plans, records, parts, readiness.DefaultThresholds())
	svc.now = func() time.Time { return dashNow }
	return svc
}

func fleetAsset(assetType domain.AssetType, status domain.AssetStatus, sector domain.Sector) *domain.Asset {
	return &domain.Asset{
		ID:        uuid.New(),
		AssetUID:  uuid.NewString(),
		AssetType: assetType,
		Status:    status,
		Sector:    sector,
		CreatedAt: dashNow,
		UpdatedAt: dashNow,
	}
}

func TestDashboardServiceAlerts(t *testing.T) {
	car := fleetAsset(domain.AssetTypePatrolCar, domain.AssetStatusInMaintenance, domain.SectorPolice)
	rifle := fleetAsset(domain.AssetTypeRifle, domain.AssetStatusOperational, domain.SectorMilitaryPolice)

	overdue := dashNow.AddDate(0, 0, -3)
	plan := &domain.MaintenancePlan{
		ID:          uuid.New(),
		AssetID:     rifle.ID,
		NextDueDate: &overdue,
	}

	part := &domain.SparePart{
		ID:               uuid.New(),
		PartName:         "Brake pads",
		ReorderThreshold: 5,
		QuantityOnHand:   2,
	}

	svc := newTestDashboardService(
		newFakeAssetRepo(car, rifle),
		newFakePlanRepo(plan),
		newFakeRecordRepo(),
		newFakePartRepo(part),
	)

	alerts, err := svc.Alerts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, alerts.UrgentCount)
	assert.Equal(t, 0, alerts.WarningCount)
	// One asset in maintenance plus one low-stock part
	assert.Equal(t, 2, alerts.InfoCount)
	assert.Len(t, alerts.Messages, 3)
}

func TestDashboardServiceSectorStatsClassFilter(t *testing.T) {
	car := fleetAsset(domain.AssetTypePatrolCar, domain.AssetStatusOperational, domain.SectorPolice)
	rifle := fleetAsset(domain.AssetTypeRifle, domain.AssetStatusOperational, domain.SectorPolice)

	svc := newTestDashboardService(
		newFakeAssetRepo(car, rifle),
		newFakePlanRepo(),
		newFakeRecordRepo(),
		newFakePartRepo(),
	)

	all, err := svc.SectorStats(context.Background(), ClassAll)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 2, all[0].Total)

	vehicles, err := svc.SectorStats(context.Background(), ClassVehicles)
	require.NoError(t, err)
	assert.Equal(t, 1, vehicles[0].Total)

	weapons, err := svc.SectorStats(context.Background(), ClassWeapons)
	require.NoError(t, err)
	assert.Equal(t, 1, weapons[0].Total)
}

func TestDashboardServiceSectorStatsUnknownClass(t *testing.T) {
	svc := newTestDashboardService(newFakeAssetRepo(), newFakePlanRepo(), newFakeRecordRepo(), newFakePartRepo())

	_, err := svc.SectorStats(context.Background(), AssetClass("tanks"))
	assert.EqualError(t, err, "unknown asset class")
}

func TestDashboardServiceOverview(t *testing.T) {
	car := fleetAsset(domain.AssetTypePatrolCar, domain.AssetStatusInMaintenance, domain.SectorTrafficPolice)
	pistol := fleetAsset(domain.AssetTypePistol, domain.AssetStatusOperational, domain.SectorPolice)
	other := fleetAsset(domain.AssetTypeOther, domain.AssetStatusOperational, domain.SectorPolice)

	svc := newTestDashboardService(
		newFakeAssetRepo(car, pistol, other),
		newFakePlanRepo(),
		newFakeRecordRepo(),
		newFakePartRepo(),
	)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, overview.TotalVehicles)
	assert.Equal(t, 1, overview.VehiclesInMaintenance)
	assert.Equal(t, 1, overview.TotalWeapons)
	assert.Equal(t, 0, overview.OverduePlans)
}

func TestDashboardServicePerformanceDefaultSLA(t *testing.T) {
	issued := dashNow.Add(-48 * time.Hour)
	completed := dashNow.Add(-24 * time.Hour)
	record := &domain.MaintenanceRecord{
		ID:             uuid.New(),
		AssetID:        uuid.New(),
		IssueDate:      issued,
		CompletionDate: &completed,
		Status:         domain.RecordStatusClosed,
	}

	svc := newTestDashboardService(
		newFakeAssetRepo(),
		newFakePlanRepo(),
		newFakeRecordRepo(record),
		newFakePartRepo(),
	)

	stats, err := svc.Performance(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, float64(readiness.DefaultSLAHours), stats.SLAHours)
	assert.Equal(t, 1, stats.Completed.Week)
	assert.InDelta(t, 24.0, stats.AvgHours.Week, 0.001)
}

func TestDashboardServiceRecency(t *testing.T) {
	stale := fleetAsset(domain.AssetTypePatrolCar, domain.AssetStatusOperational, domain.SectorPolice)
	lastService := dashNow.AddDate(0, 0, -200)
	stale.LastServiceAt = &lastService

	svc := newTestDashboardService(
		newFakeAssetRepo(stale),
		newFakePlanRepo(),
		newFakeRecordRepo(),
		newFakePartRepo(),
	)

	summary, err := svc.Recency(context.Background(), ClassAll)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Urgent)

	weapons, err := svc.Recency(context.Background(), ClassWeapons)
	require.NoError(t, err)
	assert.Equal(t, 0, weapons.Urgent)
}
