package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/FahadAljabr/arms/internal/domain"
)

// PostgresMaintenanceRecordRepository implements MaintenanceRecordRepository for PostgreSQL
type PostgresMaintenanceRecordRepository struct {
	db *sql.DB
}

// NewPostgresMaintenanceRecordRepository creates a new PostgresMaintenanceRecordRepository instance
func NewPostgresMaintenanceRecordRepository(db *sql.DB) *PostgresMaintenanceRecordRepository {
	return &PostgresMaintenanceRecordRepository{
		db: db,
	}
}

const recordColumns = `id, asset_id, technician_id, officer_id, issue_date, completion_date,
		problem_description, action_taken, status, odometer_km, downtime_hours,
		severity, category, created_at, updated_at`

func (r *PostgresMaintenanceRecordRepository) Save(ctx context.Context, record *domain.MaintenanceRecord) error {
	query := `
        INSERT INTO maintenance_records (` + recordColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `

	_, err := r.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.AssetID,
		record.TechnicianID,
		nullString(record.OfficerID),
		record.IssueDate,
		nullTime(record.CompletionDate),
		record.ProblemDescription,
		record.ActionTaken,
		record.Status,
		nullInt(record.OdometerKm),
		nullInt(record.DowntimeHours),
		nullSeverity(record.Severity),
		record.Category,
		record.CreatedAt,
		record.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save maintenance record: %w", err)
	}

	return nil
}

func (r *PostgresMaintenanceRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.MaintenanceRecord, error) {
	query := `
        SELECT ` + recordColumns + `
        FROM maintenance_records
        WHERE id = $1
    `

	record, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.New("maintenance record not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find maintenance record: %w", err)
	}

	return record, nil
}

func (r *PostgresMaintenanceRecordRepository) FindByAssetID(ctx context.Context, assetID uuid.UUID) ([]*domain.MaintenanceRecord, error) {
	query := `
        SELECT ` + recordColumns + `
        FROM maintenance_records
        WHERE asset_id = $1
        ORDER BY issue_date DESC
    `

	return r.queryRecords(ctx, query, assetID)
}

// FindAll searches maintenance records by filters
func (r *PostgresMaintenanceRecordRepository) FindAll(ctx context.Context, filters map[string]interface{}) ([]*domain.MaintenanceRecord, error) {
	query := `
        SELECT ` + recordColumns + `
        FROM maintenance_records
        WHERE 1=1
    `

	var args []interface{}
	argIndex := 1

	for _, column := range []string{"status", "severity", "category", "technician_id"} {
		if value, ok := filters[column]; ok {
			query += fmt.Sprintf(" AND %s = $%d", column, argIndex)
			args = append(args, value)
			argIndex++
		}
	}

	query += " ORDER BY created_at DESC"

	return r.queryRecords(ctx, query, args...)
}

func (r *PostgresMaintenanceRecordRepository) Update(ctx context.Context, record *domain.MaintenanceRecord) error {
	query := `
        UPDATE maintenance_records
        SET technician_id = $1, officer_id = $2, issue_date = $3, completion_date = $4,
            problem_description = $5, action_taken = $6, status = $7, odometer_km = $8,
            downtime_hours = $9, severity = $10, category = $11, updated_at = $12
        WHERE id = $13
    `

	result, err := r.db.ExecContext(
		ctx,
		query,
		record.TechnicianID,
		nullString(record.OfficerID),
		record.IssueDate,
		nullTime(record.CompletionDate),
		record.ProblemDescription,
		record.ActionTaken,
		record.Status,
		nullInt(record.OdometerKm),
		nullInt(record.DowntimeHours),
		nullSeverity(record.Severity),
		record.Category,
		record.UpdatedAt,
		record.ID,
	)

	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("maintenance record not found")
	}

	return nil
}

func (r *PostgresMaintenanceRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM maintenance_records WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return errors.New("maintenance record not found")
	}

	return nil
}

// AddRecordPart links a consumed spare part to a maintenance record
func (r *PostgresMaintenanceRecordRepository) AddRecordPart(ctx context.Context, part *domain.RecordPart) error {
	query := `
        INSERT INTO maintenance_record_parts (record_id, part_id, quantity_used)
        VALUES ($1, $2, $3)
    `

	_, err := r.db.ExecContext(ctx, query, part.RecordID, part.PartID, part.QuantityUsed)
	if err != nil {
		return fmt.Errorf("failed to add record part: %w", err)
	}

	return nil
}

func (r *PostgresMaintenanceRecordRepository) FindRecordParts(ctx context.Context, recordID uuid.UUID) ([]*domain.RecordPart, error) {
	query := `
        SELECT record_id, part_id, quantity_used
        FROM maintenance_record_parts
        WHERE record_id = $1
    `

	rows, err := r.db.QueryContext(ctx, query, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parts []*domain.RecordPart
	for rows.Next() {
		var part domain.RecordPart
		if err := rows.Scan(&part.RecordID, &part.PartID, &part.QuantityUsed); err != nil {
			return nil, err
		}
		parts = append(parts, &part)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return parts, nil
}

func (r *PostgresMaintenanceRecordRepository) queryRecords(ctx context.Context, query string, args ...interface{}) ([]*domain.MaintenanceRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.MaintenanceRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// scanRecord reads one maintenance record row, unpacking nullable columns
func scanRecord(row rowScanner) (*domain.MaintenanceRecord, error) {
	var record domain.MaintenanceRecord
	var officerID sql.NullString
	var completionDate sql.NullTime
	var odometerKm, downtimeHours sql.NullInt64
	var severity sql.NullString

	err := row.Scan(
		&record.ID,
		&record.AssetID,
		&record.TechnicianID,
		&officerID,
		&record.IssueDate,
		&completionDate,
		&record.ProblemDescription,
		&record.ActionTaken,
		&record.Status,
		&odometerKm,
		&downtimeHours,
		&severity,
		&record.Category,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if officerID.Valid {
		record.OfficerID = officerID.String
	}
	if completionDate.Valid {
		t := completionDate.Time
		record.CompletionDate = &t
	}
	if odometerKm.Valid {
		v := int(odometerKm.Int64)
		record.OdometerKm = &v
	}
	if downtimeHours.Valid {
		v := int(downtimeHours.Int64)
		record.DowntimeHours = &v
	}
	if severity.Valid {
		s := domain.Severity(severity.String)
		record.Severity = &s
	}

	return &record, nil
}

// nullString packs an optional string into sql.NullString
func nullString(v string) sql.NullString {
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}

// nullSeverity packs an optional severity into sql.NullString
func nullSeverity(v *domain.Severity) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*v), Valid: true}
}
