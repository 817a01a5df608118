package readiness

import "time"

// Overview holds the headline counts shown on the dashboard stat cards
type Overview struct {
	TotalVehicles         int `json:"total_vehicles"`
	VehiclesInMaintenance int `json:"vehicles_in_maintenance"`
	TotalWeapons          int `json:"total_weapons"`
	OverduePlans          int `json:"overdue_plans"`
}

// ComputeOverview derives the dashboard stat-card counts. Vehicle and weapon
// totals use the exhaustive asset-type classification; assets typed Other
// belong to neither count.
func (t Thresholds) ComputeOverview(assets []Asset, plans []Plan, now time.Time) Overview {
	var o Overview
	for _, a := range assets {
		switch {
		case a.AssetType.IsVehicle():
			o.TotalVehicles++
			if a.Status == StatusInMaintenance {
				o.VehiclesInMaintenance++
			}
		case a.AssetType.IsWeapon():
			o.TotalWeapons++
		}
	}

	for _, p := range plans {
		if t.ClassifyDue(p.NextDueDate, now).Bucket == BucketOverdue {
			o.OverduePlans++
		}
	}
	return o
}
