package readiness

import (
	"fmt"
	"time"
)

// AlertSeverity ranks a dashboard alert message
type AlertSeverity string

const (
	AlertUrgent  AlertSeverity = "urgent"
	AlertWarning AlertSeverity = "warning"
	AlertInfo    AlertSeverity = "info"
)

// AlertMessage is a single human-readable dashboard alert
type AlertMessage struct {
	Severity AlertSeverity `json:"severity"`
	Text     string        `json:"text"`
}

// AlertSet holds the counted alert buckets plus the ordered message list.
// Counts are per underlying item (plans, assets, parts), not per message.
type AlertSet struct {
	UrgentCount  int            `json:"urgent_count"`
	WarningCount int            `json:"warning_count"`
	InfoCount    int            `json:"info_count"`
	Messages     []AlertMessage `json:"messages"`
}

// Empty reports whether no alert fired. Callers rendering the set may show a
// "no alerts" placeholder in that case.
func (s AlertSet) Empty() bool {
	return len(s.Messages) == 0
}

// ComputeAlerts scans plans, assets and spare-part stock levels and produces
// the system-wide alert set. Messages are emitted in a fixed order: overdue
// plans, due-soon plans, assets in maintenance, low-stock parts; categories
// with a zero count are omitted. The records collection is part of the input
// snapshot but currently contributes no alert category.
func (t Thresholds) ComputeAlerts(plans []Plan, assets []Asset, records []Record, parts []SparePart, now time.Time) AlertSet {
	var overdue, dueSoon int
	for _, p := range plans {
		switch t.ClassifyDue(p.NextDueDate, now).Bucket {
		case BucketOverdue:
			overdue++
		case BucketDueSoon:
			dueSoon++
		}
	}

	var inMaintenance int
	for _, a := range assets {
		if a.Status == StatusInMaintenance {
			inMaintenance++
		}
	}

	var lowStock int
	for _, p := range parts {
		if p.ReorderThreshold > 0 && p.QuantityOnHand <= p.ReorderThreshold {
			lowStock++
		}
	}

	set := AlertSet{
		UrgentCount:  overdue,
		WarningCount: dueSoon,
		InfoCount:    inMaintenance + lowStock,
	}
	if overdue > 0 {
		set.Messages = append(set.Messages, AlertMessage{
			Severity: AlertUrgent,
			Text:     fmt.Sprintf("%d assets overdue for maintenance", overdue),
		})
	}
	if dueSoon > 0 {
		set.Messages = append(set.Messages, AlertMessage{
			Severity: AlertWarning,
			Text:     fmt.Sprintf("%d assets due for maintenance within %d days", dueSoon, t.DueSoonDays),
		})
	}
	if inMaintenance > 0 {
		set.Messages = append(set.Messages, AlertMessage{
			Severity: AlertInfo,
			Text:     fmt.Sprintf("%d assets currently in maintenance", inMaintenance),
		})
	}
	if lowStock > 0 {
		set.Messages = append(set.Messages, AlertMessage{
			Severity: AlertInfo,
			Text:     fmt.Sprintf("%d spare parts at or below reorder threshold", lowStock),
		})
	}

	return set
}
