package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/FahadAljabr/arms/internal/domain"
)

// PostgresAssetRepository implements AssetRepository for PostgreSQL
type PostgresAssetRepository struct {
	db *sql.DB
}

// NewPostgresAssetRepository creates a new PostgresAssetRepository instance
func NewPostgresAssetRepository(db *sql.DB) *PostgresAssetRepository {
	return &PostgresAssetRepository{
		db: db,
	}
}

const assetColumns = `id, asset_uid, asset_type, model, status, sector, current_km,
		last_service_at, commissioned_at, decommissioned_at, created_at, updated_at`

func (r *PostgresAssetRepository) Save(ctx context.Context, asset *domain.Asset) error {
	query := `
        INSERT INTO assets (` + assetColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `

	_, err := r.db.ExecContext(
		ctx,
		query,
		asset.ID,
		asset.AssetUID,
		asset.AssetType,
		asset.Model,
		asset.Status,
		asset.Sector,
		nullInt(asset.CurrentKm),
		nullTime(asset.LastServiceAt),
		nullTime(asset.CommissionedAt),
		nullTime(asset.DecommissionedAt),
		asset.CreatedAt,
		asset.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save asset: %w", err)
	}

	return nil
}

func (r *PostgresAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	query := `
        SELECT ` + assetColumns + `
        FROM assets
        WHERE id = $1
    `

	asset, err := scanAsset(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.New("asset not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}

	return asset, nil
}

// FindAll searches assets by filters
func (r *PostgresAssetRepository) FindAll(ctx context.Context, filters map[string]interface{}) ([]*domain.Asset, error) {
	query := `
        SELECT ` + assetColumns + `
        FROM assets
        WHERE 1=1
    `

	var args []interface{}
	argIndex := 1

	// Filters are appended in a fixed column set; unknown keys are ignored
	for _, column := range []string{"asset_uid", "asset_type", "status", "sector"} {
		if value, ok := filters[column]; ok {
			query += fmt.Sprintf(" AND %s = $%d", column, argIndex)
			args = append(args, value)
			argIndex++
		}
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []*domain.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assets, nil
}

func (r *PostgresAssetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	query := `
        UPDATE assets
        SET asset_type = $1, model = $2, status = $3, sector = $4, current_km = $5,
            last_service_at = $6, commissioned_at = $7, decommissioned_at = $8, updated_at = $9
        WHERE id = $10
    `

	result, err := r.db.ExecContext(
		ctx,
		query,
		asset.AssetType,
		asset.Model,
		asset.Status,
		asset.Sector,
		nullInt(asset.CurrentKm),
		nullTime(asset.LastServiceAt),
		nullTime(asset.CommissionedAt),
		nullTime(asset.DecommissionedAt),
		asset.UpdatedAt,
		asset.ID,
	)

	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("asset not found")
	}

	return nil
}

func (r *PostgresAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM assets WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("asset not found")
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAsset reads one asset row, unpacking nullable columns
func scanAsset(row rowScanner) (*domain.Asset, error) {
	var asset domain.Asset
	var currentKm sql.NullInt64
	var lastServiceAt, commissionedAt, decommissionedAt sql.NullTime

	err := row.Scan(
		&asset.ID,
		&asset.AssetUID,
		&asset.AssetType,
		&asset.Model,
		&asset.Status,
		&asset.Sector,
		&currentKm,
		&lastServiceAt,
		&commissionedAt,
		&decommissionedAt,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if currentKm.Valid {
		km := int(currentKm.Int64)
		asset.CurrentKm = &km
	}
	if lastServiceAt.Valid {
		t := lastServiceAt.Time
		asset.LastServiceAt = &t
	}
	if commissionedAt.Valid {
		t := commissionedAt.Time
		asset.CommissionedAt = &t
	}
	if decommissionedAt.Valid {
		t := decommissionedAt.Time
		asset.DecommissionedAt = &t
	}

	return &asset, nil
}

// nullInt packs an optional int into sql.NullInt64
func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

// nullTime packs an optional timestamp into sql.NullTime
func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}
