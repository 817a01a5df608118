package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/FahadAljabr/arms/internal/domain"
)

// PostgresMaintenancePlanRepository implements MaintenancePlanRepository for PostgreSQL
type PostgresMaintenancePlanRepository struct {
	db *sql.DB
}

// NewPostgresMaintenancePlanRepository creates a new PostgresMaintenancePlanRepository instance
func NewPostgresMaintenancePlanRepository(db *sql.DB) *PostgresMaintenancePlanRepository {
	return &PostgresMaintenancePlanRepository{
		db: db,
	}
}

const planColumns = `id, asset_id, plan_description, frequency_km, frequency_days,
		next_due_date, last_maintenance_km, created_at, updated_at`

func (r *PostgresMaintenancePlanRepository) Save(ctx context.Context, plan *domain.MaintenancePlan) error {
	query := `
        INSERT INTO maintenance_plans (` + planColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `

	_, err := r.db.ExecContext(
		ctx,
		query,
		plan.ID,
		plan.AssetID,
		plan.PlanDescription,
		nullInt(plan.FrequencyKm),
		nullInt(plan.FrequencyDays),
		nullTime(plan.NextDueDate),
		nullInt(plan.LastMaintenanceKm),
		plan.CreatedAt,
		plan.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save maintenance plan: %w", err)
	}

	return nil
}

func (r *PostgresMaintenancePlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.MaintenancePlan, error) {
	query := `
        SELECT ` + planColumns + `
        FROM maintenance_plans
        WHERE id = $1
    `

	plan, err := scanPlan(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.New("maintenance plan not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find maintenance plan: %w", err)
	}

	return plan, nil
}

// FindByAssetID finds the plan tied to an asset; each asset carries at most one
func (r *PostgresMaintenancePlanRepository) FindByAssetID(ctx context.Context, assetID uuid.UUID) (*domain.MaintenancePlan, error) {
	query := `
        SELECT ` + planColumns + `
        FROM maintenance_plans
        WHERE asset_id = $1
    `

	plan, err := scanPlan(r.db.QueryRowContext(ctx, query, assetID))
	if err == sql.ErrNoRows {
		return nil, errors.New("maintenance plan not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find maintenance plan: %w", err)
	}

	return plan, nil
}

func (r *PostgresMaintenancePlanRepository) FindAll(ctx context.Context) ([]*domain.MaintenancePlan, error) {
	query := `
        SELECT ` + planColumns + `
        FROM maintenance_plans
        ORDER BY created_at DESC
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []*domain.MaintenancePlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *PostgresMaintenancePlanRepository) Update(ctx context.Context, plan *domain.MaintenancePlan) error {
	query := `
        UPDATE maintenance_plans
        SET plan_description = $1, frequency_km = $2, frequency_days = $3,
            next_due_date = $4, last_maintenance_km = $5, updated_at = $6
        WHERE id = $7
    `

	result, err := r.db.ExecContext(
		ctx,
		query,
		plan.PlanDescription,
		nullInt(plan.FrequencyKm),
		nullInt(plan.FrequencyDays),
		nullTime(plan.NextDueDate),
		nullInt(plan.LastMaintenanceKm),
		plan.UpdatedAt,
		plan.ID,
	)

	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("maintenance plan not found")
	}

	return nil
}

func (r *PostgresMaintenancePlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM maintenance_plans WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("maintenance plan not found")
	}

	return nil
}

// scanPlan reads one maintenance plan row, unpacking nullable columns
func scanPlan(row rowScanner) (*domain.MaintenancePlan, error) {
	var plan domain.MaintenancePlan
	var frequencyKm, frequencyDays, lastMaintenanceKm sql.NullInt64
	var nextDueDate sql.NullTime

	err := row.Scan(
		&plan.ID,
		&plan.AssetID,
		&plan.PlanDescription,
		&frequencyKm,
		&frequencyDays,
		&nextDueDate,
		&lastMaintenanceKm,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if frequencyKm.Valid {
		v := int(frequencyKm.Int64)
		plan.FrequencyKm = &v
	}
	if frequencyDays.Valid {
		v := int(frequencyDays.Int64)
		plan.FrequencyDays = &v
	}
	if lastMaintenanceKm.Valid {
		v := int(lastMaintenanceKm.Int64)
		plan.LastMaintenanceKm = &v
	}
	if nextDueDate.Valid {
		t := nextDueDate.Time
		plan.NextDueDate = &t
	}

	return &plan, nil
}
