package readiness

import "time"

// DefaultSLAHours is the window within which a closed record counts as on time
const DefaultSLAHours = 72

// WindowCounts holds one integer per trailing reporting window
type WindowCounts struct {
	Week  int `json:"week"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// WindowValues holds one value per trailing reporting window
type WindowValues struct {
	Week  float64 `json:"week"`
	Month float64 `json:"month"`
	Year  float64 `json:"year"`
}

// PerformanceStats summarizes completion throughput and SLA compliance.
// Averages and rates are 0 (not nil) over empty windows. ClampedDurations
// counts records whose completion predates their issue date; such durations
// are clamped to zero rather than failing the aggregation.
type PerformanceStats struct {
	Completed        WindowCounts `json:"completed"`
	AvgHours         WindowValues `json:"avg_hours"`
	OnTimeRate       WindowValues `json:"on_time_rate"`
	OverdueCount     int          `json:"overdue_count"`
	SLAHours         float64      `json:"sla_hours"`
	ClampedDurations int          `json:"clamped_durations"`
}

type closedRecord struct {
	completedAt time.Time
	hours       float64
}

// ComputePerformance derives completion counts, average resolution time and
// on-time rate over three trailing windows: the last 7 days, month to date
// and year to date. The windows overlap by construction; a record completed
// this week is also counted in the month and year figures. slaHours values
// of zero or below fall back to DefaultSLAHours.
func (t Thresholds) ComputePerformance(records []Record, now time.Time, slaHours float64) PerformanceStats {
	if slaHours <= 0 {
		slaHours = DefaultSLAHours
	}

	var clamped int
	var closed []closedRecord
	for _, r := range records {
		if r.Status != RecordClosed || r.CompletionDate == nil {
			continue
		}
		hours := r.CompletionDate.Sub(r.IssueDate).Hours()
		if hours < 0 {
			clamped++
			hours = 0
		}
		closed = append(closed, closedRecord{completedAt: *r.CompletionDate, hours: hours})
	}

	weekStart := now.AddDate(0, 0, -7)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	week := within(closed, weekStart, now)
	month := within(closed, monthStart, now)
	year := within(closed, yearStart, now)

	// Stale open work: anything not closed that was reported too long ago
	staleThreshold := now.AddDate(0, 0, -t.StaleOpenDays)
	var overdue int
	for _, r := range records {
		if r.Status != RecordClosed && r.IssueDate.Before(staleThreshold) {
			overdue++
		}
	}

	return PerformanceStats{
		Completed: WindowCounts{
			Week:  len(week),
			Month: len(month),
			Year:  len(year),
		},
		AvgHours: WindowValues{
			Week:  avgHours(week),
			Month: avgHours(month),
			Year:  avgHours(year),
		},
		OnTimeRate: WindowValues{
			Week:  onTimeRate(week, slaHours),
			Month: onTimeRate(month, slaHours),
			Year:  onTimeRate(year, slaHours),
		},
		OverdueCount:     overdue,
		SLAHours:         slaHours,
		ClampedDurations: clamped,
	}
}

// within selects records completed inside [from, to]
func within(closed []closedRecord, from, to time.Time) []closedRecord {
	var out []closedRecord
	for _, c := range closed {
		if !c.completedAt.Before(from) && !c.completedAt.After(to) {
			out = append(out, c)
		}
	}
	return out
}

func avgHours(closed []closedRecord) float64 {
	if len(closed) == 0 {
		return 0
	}
	var total float64
	for _, c := range closed {
		total += c.hours
	}
	return total / float64(len(closed))
}

func onTimeRate(closed []closedRecord, slaHours float64) float64 {
	if len(closed) == 0 {
		return 0
	}
	var onTime int
	for _, c := range closed {
		if c.hours <= slaHours {
			onTime++
		}
	}
	return float64(onTime) / float64(len(closed)) * 100
}
