package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/FahadAljabr/arms/internal/domain"
)

// PostgresSparePartRepository implements SparePartRepository for PostgreSQL
type PostgresSparePartRepository struct {
	db *sql.DB
}

// NewPostgresSparePartRepository creates a new PostgresSparePartRepository instance
func NewPostgresSparePartRepository(db *sql.DB) *PostgresSparePartRepository {
	return &PostgresSparePartRepository{
		db: db,
	}
}

const partColumns = `id, part_name, part_number, unit, unit_cost,
		reorder_threshold, quantity_on_hand, created_at, updated_at`

func (r *PostgresSparePartRepository) Save(ctx context.Context, part *domain.SparePart) error {
	query := `
        INSERT INTO spare_parts (` + partColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `

	_, err := r.db.ExecContext(
		ctx,
		query,
		part.ID,
		part.PartName,
		part.PartNumber,
		part.Unit,
		nullFloat(part.UnitCost),
		part.ReorderThreshold,
		part.QuantityOnHand,
		part.CreatedAt,
		part.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save spare part: %w", err)
	}

	return nil
}

func (r *PostgresSparePartRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.SparePart, error) {
	query := `
        SELECT ` + partColumns + `
        FROM spare_parts
        WHERE id = $1
    `

	part, err := scanPart(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.New("spare part not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find spare part: %w", err)
	}

	return part, nil
}

func (r *PostgresSparePartRepository) FindAll(ctx context.Context) ([]*domain.SparePart, error) {
	query := `
        SELECT ` + partColumns + `
        FROM spare_parts
        ORDER BY created_at DESC
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parts []*domain.SparePart
	for rows.Next() {
		part, err := scanPart(rows)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return parts, nil
}

func (r *PostgresSparePartRepository) Update(ctx context.Context, part *domain.SparePart) error {
	query := `
        UPDATE spare_parts
        SET part_name = $1, part_number = $2, unit = $3, unit_cost = $4,
            reorder_threshold = $5, quantity_on_hand = $6, updated_at = $7
        WHERE id = $8
    `

	result, err := r.db.ExecContext(
		ctx,
		query,
		part.PartName,
		part.PartNumber,
		part.Unit,
		nullFloat(part.UnitCost),
		part.ReorderThreshold,
		part.QuantityOnHand,
		part.UpdatedAt,
		part.ID,
	)

	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("spare part not found")
	}

	return nil
}

func (r *PostgresSparePartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM spare_parts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("spare part not found")
	}

	return nil
}

// scanPart reads one spare part row, unpacking nullable columns
func scanPart(row rowScanner) (*domain.SparePart, error) {
	var part domain.SparePart
	var unitCost sql.NullFloat64

	err := row.Scan(
		&part.ID,
		&part.PartName,
		&part.PartNumber,
		&part.Unit,
		&unitCost,
		&part.ReorderThreshold,
		&part.QuantityOnHand,
		&part.CreatedAt,
		&part.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if unitCost.Valid {
		v := unitCost.Float64
		part.UnitCost = &v
	}

	return &part, nil
}

// nullFloat packs an optional float into sql.NullFloat64
func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
