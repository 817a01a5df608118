package domain

import (
	"time"

	"github.com/google/uuid"
)

// Enums for statuses
type AssetStatus string
type AssetType string
type Sector string
type RecordStatus string
type Severity string

const (
	// Asset statuses
	AssetStatusOperational    AssetStatus = "Operational"
	AssetStatusInMaintenance  AssetStatus = "In Maintenance"
	AssetStatusDecommissioned AssetStatus = "Decommissioned"

	// Asset types
	AssetTypePatrolCar      AssetType = "Patrol Car"
	AssetTypeArmoredVehicle AssetType = "Armored Vehicle"
	AssetTypePistol         AssetType = "Pistol"
	AssetTypeRifle          AssetType = "Rifle"
	AssetTypeShotgun        AssetType = "Shotgun"
	AssetTypeSubmachineGun  AssetType = "Submachine Gun"
	AssetTypeSniperRifle    AssetType = "Sniper Rifle"
	AssetTypeOther          AssetType = "Other"

	// Sectors covered by the fleet
	SectorPolice         Sector = "Police"
	SectorTrafficPolice  Sector = "Traffic Police"
	SectorMilitaryPolice Sector = "Military Police"

	// Maintenance record statuses (Open -> In Progress -> Closed)
	RecordStatusOpen       RecordStatus = "Open"
	RecordStatusInProgress RecordStatus = "In Progress"
	RecordStatusClosed     RecordStatus = "Closed"

	// Maintenance record severity
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// Asset represents a tracked vehicle or weapon unit
type Asset struct {
	ID               uuid.UUID   `json:"id"`
	AssetUID         string      `json:"asset_uid"`
	AssetType        AssetType   `json:"asset_type"`
	Model            string      `json:"model"`
	Status           AssetStatus `json:"status"`
	Sector           Sector      `json:"sector"`
	CurrentKm        *int        `json:"current_km"`
	LastServiceAt    *time.Time  `json:"last_service_at"`
	CommissionedAt   *time.Time  `json:"commissioned_at"`
	DecommissionedAt *time.Time  `json:"decommissioned_at"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// MaintenancePlan represents a recurring maintenance schedule for one asset.
// At most one plan exists per asset.
type MaintenancePlan struct {
	ID                uuid.UUID  `json:"id"`
	AssetID           uuid.UUID  `json:"asset_id"`
	PlanDescription   string     `json:"plan_description"`
	FrequencyKm       *int       `json:"frequency_km"`
	FrequencyDays     *int       `json:"frequency_days"`
	NextDueDate       *time.Time `json:"next_due_date"`
	LastMaintenanceKm *int       `json:"last_maintenance_km"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// MaintenanceRecord represents a logged maintenance event for one asset.
// CompletionDate is set only when the record is Closed.
type MaintenanceRecord struct {
	ID                 uuid.UUID    `json:"id"`
	AssetID            uuid.UUID    `json:"asset_id"`
	TechnicianID       string       `json:"technician_id"`
	OfficerID          string       `json:"officer_id"`
	IssueDate          time.Time    `json:"issue_date"`
	CompletionDate     *time.Time   `json:"completion_date"`
	ProblemDescription string       `json:"problem_description"`
	ActionTaken        string       `json:"action_taken"`
	Status             RecordStatus `json:"status"`
	OdometerKm         *int         `json:"odometer_km"`
	DowntimeHours      *int         `json:"downtime_hours"`
	Severity           *Severity    `json:"severity"`
	Category           string       `json:"category"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// SparePart represents an inventory item consumed by maintenance work
type SparePart struct {
	ID               uuid.UUID `json:"id"`
	PartName         string    `json:"part_name"`
	PartNumber       string    `json:"part_number"`
	Unit             string    `json:"unit"`
	UnitCost         *float64  `json:"unit_cost"`
	ReorderThreshold int       `json:"reorder_threshold"`
	QuantityOnHand   int       `json:"quantity_on_hand"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// RecordPart links a spare part to the maintenance record that used it
type RecordPart struct {
	RecordID     uuid.UUID `json:"record_id"`
	PartID       uuid.UUID `json:"part_id"`
	QuantityUsed int       `json:"quantity_used"`
}

// RecordAttachment describes a file stored alongside a maintenance record
type RecordAttachment struct {
	RecordID   uuid.UUID `json:"record_id"`
	ObjectKey  string    `json:"object_key"`
	FileName   string    `json:"file_name"`
	SizeBytes  int64     `json:"size_bytes"`
	UploadedAt time.Time `json:"uploaded_at"`
}
