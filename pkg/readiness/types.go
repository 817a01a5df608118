// Package readiness derives maintenance readiness alerts, due-date
// classifications and performance statistics from asset, plan and record
// collections. Every function is a pure pass over its inputs: no I/O, no
// ambient clock, the reference time is always passed in by the caller.
package readiness

import (
	"time"

	"github.com/google/uuid"
)

// Enums for the closed vocabulary the engine classifies over
type AssetStatus string
type AssetType string
type Sector string
type RecordStatus string

const (
	// Asset statuses
	StatusOperational    AssetStatus = "Operational"
	StatusInMaintenance  AssetStatus = "In Maintenance"
	StatusDecommissioned AssetStatus = "Decommissioned"

	// Asset types
	TypePatrolCar      AssetType = "Patrol Car"
	TypeArmoredVehicle AssetType = "Armored Vehicle"
	TypePistol         AssetType = "Pistol"
	TypeRifle          AssetType = "Rifle"
	TypeShotgun        AssetType = "Shotgun"
	TypeSubmachineGun  AssetType = "Submachine Gun"
	TypeSniperRifle    AssetType = "Sniper Rifle"
	TypeOther          AssetType = "Other"

	// Sectors aggregated by the dashboard; assets in other sectors are
	// tolerated and simply excluded from sector-keyed views
	SectorPolice         Sector = "Police"
	SectorTrafficPolice  Sector = "Traffic Police"
	SectorMilitaryPolice Sector = "Military Police"

	// Maintenance record statuses
	RecordOpen       RecordStatus = "Open"
	RecordInProgress RecordStatus = "In Progress"
	RecordClosed     RecordStatus = "Closed"
)

// IsWeapon reports whether the asset type is a weapon variant. The check is
// exhaustive over the closed type set, never inferred from the type name.
func (t AssetType) IsWeapon() bool {
	switch t {
	case TypePistol, TypeRifle, TypeShotgun, TypeSubmachineGun, TypeSniperRifle:
		return true
	}
	return false
}

// IsVehicle reports whether the asset type is a vehicle variant.
func (t AssetType) IsVehicle() bool {
	switch t {
	case TypePatrolCar, TypeArmoredVehicle:
		return true
	}
	return false
}

// Asset is the engine's read-only view of a fleet asset
type Asset struct {
	ID             uuid.UUID
	AssetType      AssetType
	Status         AssetStatus
	Sector         Sector
	CurrentKm      *int
	CommissionedAt *time.Time
	LastServiceAt  *time.Time
}

// Plan is the engine's read-only view of a maintenance plan.
// At most one plan per asset is assumed.
type Plan struct {
	AssetID     uuid.UUID
	NextDueDate *time.Time
	Description string
}

// Record is the engine's read-only view of a maintenance record.
// CompletionDate is nil while Status != Closed.
type Record struct {
	AssetID        uuid.UUID
	IssueDate      time.Time
	CompletionDate *time.Time
	Status         RecordStatus
}

// SparePart carries the stock levels the low-stock alert is derived from
type SparePart struct {
	QuantityOnHand   int
	ReorderThreshold int
}
