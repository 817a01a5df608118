package readiness

import (
	"math"
	"time"
)

// Bucket classifies a due date relative to the reference time
type Bucket string

const (
	BucketNone     Bucket = "none"
	BucketOverdue  Bucket = "overdue"
	BucketDueSoon  Bucket = "due_soon"
	BucketUpcoming Bucket = "upcoming"
)

// Level classifies service recency for readiness alerts
type Level string

const (
	LevelNone    Level = "none"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelUrgent  Level = "urgent"
)

// Thresholds holds the day boundaries every classification is derived from.
// Zero values are not meaningful; start from DefaultThresholds.
type Thresholds struct {
	// Plans due within this many days count as due soon
	DueSoonDays int
	// Service-recency boundaries, in days since last service
	UrgentAgeDays  int
	WarningAgeDays int
	InfoAgeDays    int
	// Open records older than this many days count as overdue work
	StaleOpenDays int
}

// DefaultThresholds returns the policy used by the dashboard
func DefaultThresholds() Thresholds {
	return Thresholds{
		DueSoonDays:    7,
		UrgentAgeDays:  180,
		WarningAgeDays: 90,
		InfoAgeDays:    30,
		StaleOpenDays:  7,
	}
}

// DueClass is the result of classifying a due date. Days carries the whole
// days until due for DueSoon and Upcoming, or the whole days past due for
// Overdue; it is zero for None.
type DueClass struct {
	Bucket Bucket `json:"bucket"`
	Days   int    `json:"days"`
}

const hoursPerDay = 24

// ClassifyDue classifies a plan due date against now. Due dates are calendar
// dates: a plan is overdue only once its whole day has passed, so a plan due
// today classifies as due soon regardless of the time of day.
func (t Thresholds) ClassifyDue(target *time.Time, now time.Time) DueClass {
	if target == nil {
		return DueClass{Bucket: BucketNone}
	}

	due := endOfDay(target.In(now.Location()))
	if due.Before(now) {
		return DueClass{Bucket: BucketOverdue, Days: daysBetween(due, now)}
	}

	until := daysBetween(now, due)
	if until <= t.DueSoonDays {
		return DueClass{Bucket: BucketDueSoon, Days: until}
	}
	return DueClass{Bucket: BucketUpcoming, Days: until}
}

// ClassifyServiceAge maps the time since last service onto an alert level.
// A missing last-service date always resolves to LevelNone.
func (t Thresholds) ClassifyServiceAge(lastServiceAt *time.Time, now time.Time) Level {
	if lastServiceAt == nil {
		return LevelNone
	}

	ageDays := daysBetween(*lastServiceAt, now)
	switch {
	case ageDays >= t.UrgentAgeDays:
		return LevelUrgent
	case ageDays >= t.WarningAgeDays:
		return LevelWarning
	case ageDays >= t.InfoAgeDays:
		return LevelInfo
	}
	return LevelNone
}

// endOfDay returns the last instant of t's calendar day
func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// daysBetween returns the whole days from one instant to a later one
func daysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / hoursPerDay))
}
