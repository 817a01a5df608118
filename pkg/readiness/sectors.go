package readiness

import "time"

// Sectors reported by the dashboard, in display order
var sectorOrder = []Sector{SectorPolice, SectorTrafficPolice, SectorMilitaryPolice}

// SectorStat is the per-sector rollup shown on the fleet views.
// AvgAgeYears is nil when no asset in the sector carries a commission date.
type SectorStat struct {
	Sector        Sector   `json:"sector"`
	Total         int      `json:"total"`
	Active        int      `json:"active"`
	InMaintenance int      `json:"in_maintenance"`
	Overdue       int      `json:"overdue"`
	AvgAgeYears   *float64 `json:"avg_age_years"`
}

const daysPerYear = 365.25

// ComputeSectorStats groups assets by sector and derives per-sector counts
// and average asset age. Sectors are always emitted in the fixed declared
// order so the display stays stable; assets outside the declared sectors are
// excluded. Overdue reuses the urgent service-age boundary.
func (t Thresholds) ComputeSectorStats(assets []Asset, now time.Time) []SectorStat {
	stats := make([]SectorStat, 0, len(sectorOrder))
	for _, sector := range sectorOrder {
		stat := SectorStat{Sector: sector}
		var ageYearsSum float64
		var withDates int

		for _, a := range assets {
			if a.Sector != sector {
				continue
			}
			stat.Total++

			switch a.Status {
			case StatusOperational:
				stat.Active++
			case StatusInMaintenance:
				stat.InMaintenance++
			}

			if t.ClassifyServiceAge(a.LastServiceAt, now) == LevelUrgent {
				stat.Overdue++
			}

			if a.CommissionedAt != nil {
				ageYearsSum += now.Sub(*a.CommissionedAt).Hours() / (hoursPerDay * daysPerYear)
				withDates++
			}
		}

		// Average only over assets that have a commission date
		if withDates > 0 {
			avg := ageYearsSum / float64(withDates)
			stat.AvgAgeYears = &avg
		}

		stats = append(stats, stat)
	}
	return stats
}

// RecencySummary counts assets per service-recency level
type RecencySummary struct {
	Urgent  int `json:"urgent"`
	Warning int `json:"warning"`
	Info    int `json:"info"`
}

// SummarizeServiceRecency tallies how many assets fall into each
// service-recency level. Assets without a last-service date are skipped.
func (t Thresholds) SummarizeServiceRecency(assets []Asset, now time.Time) RecencySummary {
	var sum RecencySummary
	for _, a := range assets {
		switch t.ClassifyServiceAge(a.LastServiceAt, now) {
		case LevelUrgent:
			sum.Urgent++
		case LevelWarning:
			sum.Warning++
		case LevelInfo:
			sum.Info++
		}
	}
	return sum
}
