package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FahadAljabr/arms/internal/domain"
)

func newTestMaintenanceService(assets *fakeAssetRepo, plans *fakePlanRepo, records *fakeRecordRepo, parts *fakePartRepo) *MaintenanceService {
	return NewMaintenanceService(records, plans, assets, parts, nil)
}

func TestOpenRecordUnknownAsset(t *testing.T) {
	svc := newTestMaintenanceService(newFakeAssetRepo(), newFakePlanRepo(), newFakeRecordRepo(), newFakePartRepo())

	_, err := svc.OpenRecord(context.Background(), OpenRecordInput{
		AssetID:      uuid.New(),
		TechnicianID: "tech-7",
	})
	assert.EqualError(t, err, "asset not found")
}

func TestOpenRecordDefaults(t *testing.T) {
	asset := fleetAsset(domain.AssetTypePatrolCar, domain.AssetStatusOperational, domain.SectorPolice)
	records := newFakeRecordRepo()
	svc := newTestMaintenanceService(newFakeAssetRepo(asset), newFakePlanRepo(), records, newFakePartRepo())

	record, err := svc.OpenRecord(context.Background(), OpenRecordInput{
		AssetID:            asset.ID,
		TechnicianID:       "tech-7",
		ProblemDescription: "Engine overheating",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RecordStatusOpen, record.Status)
	assert.Nil(t, record.CompletionDate)
	assert.False(t, record.IssueDate.IsZero())
	assert.Len(t, records.records, 1)
}

func TestCloseRecordStampsCompletionAndAsset(t *testing.T) {
	asset := fleetAsset(domain.AssetTypePatrolCar, domain.AssetStatusOperational, domain.SectorPolice)
	km := 50000
	record := &domain.MaintenanceRecord{
		ID:           uuid.New(),
		AssetID:      asset.ID,
		TechnicianID: "tech-7",
		IssueDate:    time.Now().Add(-24 * time.Hour),
		Status:       domain.RecordStatusInProgress,
		OdometerKm:   &km,
	}

	assets := newFakeAssetRepo(asset)
	svc := newTestMaintenanceService(assets, newFakePlanRepo(), newFakeRecordRepo(record), newFakePartRepo())

	closed, err := svc.CloseRecord(context.Background(), record.ID, "Replaced coolant pump")
	require.NoError(t, err)

	assert.Equal(t, domain.RecordStatusClosed, closed.Status)
	require.NotNil(t, closed.CompletionDate)
	assert.Equal(t, "Replaced coolant pump", closed.ActionTaken)

	// Closing rolls the asset's service state forward
	stored, err := assets.FindByID(context.Background(), asset.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastServiceAt)
	require.NotNil(t, stored.CurrentKm)
	assert.Equal(t, km, *stored.CurrentKm)

	// A closed record cannot be closed again
	_, err = svc.CloseRecord(context.Background(), record.ID, "")
	assert.EqualError(t, err, "record is already closed")
}

func TestUpdateRecordRejectsCloseShortcut(t *testing.T) {
	asset := fleetAsset(domain.AssetTypePatrolCar, domain.AssetStatusOperational, domain.SectorPolice)
	record := &domain.MaintenanceRecord{
		ID:        uuid.New(),
		AssetID:   asset.ID,
		IssueDate: time.Now(),
		Status:    domain.RecordStatusOpen,
	}
	svc := newTestMaintenanceService(newFakeAssetRepo(asset), newFakePlanRepo(), newFakeRecordRepo(record), newFakePartRepo())

	closedStatus := domain.RecordStatusClosed
	_, err := svc.UpdateRecord(context.Background(), record.ID, UpdateRecordInput{Status: &closedStatus})
	assert.EqualError(t, err, "use close to complete a record")
}

func TestConsumePartDecrementsStock(t *testing.T) {
	asset := fleetAsset(domain.AssetTypePatrolCar, domain.AssetStatusOperational, domain.SectorPolice)
	record := &domain.MaintenanceRecord{
		ID:        uuid.New(),
		AssetID:   asset.ID,
		IssueDate: time.Now(),
		Status:    domain.RecordStatusOpen,
	}
	part := &domain.SparePart{
		ID:             uuid.New(),
		PartName:       "Oil filter",
		QuantityOnHand: 3,
	}

	parts := newFakePartRepo(part)
	records := newFakeRecordRepo(record)
	svc := newTestMaintenanceService(newFakeAssetRepo(asset), newFakePlanRepo(), records, parts)

	usage, err := svc.ConsumePart(context.Background(), record.ID, part.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, usage.QuantityUsed)

	stored, err := parts.FindByID(context.Background(), part.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.QuantityOnHand)

	// Stock never goes negative
	_, err = svc.ConsumePart(context.Background(), record.ID, part.ID, 2)
	assert.EqualError(t, err, "insufficient stock")
}

func TestCreatePlanOnePerAsset(t *testing.T) {
	asset := fleetAsset(domain.AssetTypePatrolCar, domain.AssetStatusOperational, domain.SectorPolice)
	svc := newTestMaintenanceService(newFakeAssetRepo(asset), newFakePlanRepo(), newFakeRecordRepo(), newFakePartRepo())

	due := time.Now().AddDate(0, 1, 0)
	plan, err := svc.CreatePlan(context.Background(), asset.ID, "Monthly inspection", nil, nil, &due)
	require.NoError(t, err)
	assert.Equal(t, asset.ID, plan.AssetID)

	_, err = svc.CreatePlan(context.Background(), asset.ID, "Second plan", nil, nil, nil)
	assert.EqualError(t, err, "asset already has a maintenance plan")
}
