package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FahadAljabr/arms/internal/domain"
)

func assetRows(assets ...*domain.Asset) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "asset_uid", "asset_type", "model", "status", "sector", "current_km",
		"last_service_at", "commissioned_at", "decommissioned_at", "created_at", "updated_at",
	})
	for _, a := range assets {
		rows.AddRow(
			a.ID, a.AssetUID, a.AssetType, a.Model, a.Status, a.Sector,
			nullInt(a.CurrentKm), nullTime(a.LastServiceAt), nullTime(a.CommissionedAt),
			nullTime(a.DecommissionedAt), a.CreatedAt, a.UpdatedAt,
		)
	}
	return rows
}

func sampleAsset() *domain.Asset {
	km := 42000
	commissioned := time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	return &domain.Asset{
		ID:             uuid.New(),
		AssetUID:       "PC-1042",
		AssetType:      domain.AssetTypePatrolCar,
		Model:          "Toyota Land Cruiser",
		Status:         domain.AssetStatusOperational,
		Sector:         domain.SectorPolice,
		CurrentKm:      &km,
		CommissionedAt: &commissioned,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestPostgresAssetRepositorySave(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresAssetRepository(db)
	asset := sampleAsset()

	mock.ExpectExec("INSERT INTO assets").
		WithArgs(
			asset.ID, asset.AssetUID, asset.AssetType, asset.Model, asset.Status,
			asset.Sector, nullInt(asset.CurrentKm), nullTime(asset.LastServiceAt),
			nullTime(asset.CommissionedAt), nullTime(asset.DecommissionedAt),
			asset.CreatedAt, asset.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Save(context.Background(), asset)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAssetRepositoryFindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresAssetRepository(db)
	asset := sampleAsset()

	mock.ExpectQuery("SELECT (.+) FROM assets").
		WithArgs(asset.ID).
		WillReturnRows(assetRows(asset))

	found, err := repo.FindByID(context.Background(), asset.ID)
	require.NoError(t, err)
	assert.Equal(t, asset.AssetUID, found.AssetUID)
	assert.Equal(t, asset.Status, found.Status)
	require.NotNil(t, found.CurrentKm)
	assert.Equal(t, *asset.CurrentKm, *found.CurrentKm)
	assert.Nil(t, found.LastServiceAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAssetRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresAssetRepository(db)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM assets").
		WithArgs(id).
		WillReturnRows(assetRows())

	found, err := repo.FindByID(context.Background(), id)
	assert.Nil(t, found)
	assert.EqualError(t, err, "asset not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAssetRepositoryFindAllFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresAssetRepository(db)
	asset := sampleAsset()

	mock.ExpectQuery(`SELECT (.+) FROM assets(.+)WHERE 1=1 AND status = \$1 AND sector = \$2`).
		WithArgs("Operational", "Police").
		WillReturnRows(assetRows(asset))

	assets, err := repo.FindAll(context.Background(), map[string]interface{}{
		"status": "Operational",
		"sector": "Police",
	})
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, asset.AssetUID, assets[0].AssetUID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAssetRepositoryUpdateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresAssetRepository(db)
	asset := sampleAsset()

	mock.ExpectExec("UPDATE assets").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), asset)
	assert.EqualError(t, err, "asset not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresAssetRepositoryDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgresAssetRepository(db)
	id := uuid.New()

	mock.ExpectExec("DELETE FROM assets").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
