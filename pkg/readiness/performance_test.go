package readiness

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedRec(issue time.Time, completed time.Time) Record {
	return Record{
		AssetID:        uuid.New(),
		IssueDate:      issue,
		CompletionDate: &completed,
		Status:         RecordClosed,
	}
}

func TestComputePerformanceEmpty(t *testing.T) {
	th := DefaultThresholds()

	got := th.ComputePerformance(nil, testNow, DefaultSLAHours)

	assert.Equal(t, WindowCounts{}, got.Completed)
	assert.Equal(t, WindowValues{}, got.AvgHours)
	assert.Equal(t, WindowValues{}, got.OnTimeRate)
	assert.Zero(t, got.OverdueCount)
	assert.Equal(t, float64(DefaultSLAHours), got.SLAHours)
}

func TestComputePerformanceOnTimeRateAndAverage(t *testing.T) {
	th := DefaultThresholds()

	// Two records closed today: one resolved in 24h, one in 100h (sla 72)
	records := []Record{
		closedRec(testNow.Add(-24*time.Hour), testNow),
		closedRec(testNow.Add(-100*time.Hour), testNow),
	}

	got := th.ComputePerformance(records, testNow, 72)

	assert.Equal(t, 2, got.Completed.Week)
	assert.Equal(t, 62.0, got.AvgHours.Week)
	assert.Equal(t, 50.0, got.OnTimeRate.Week)
}

func TestComputePerformanceWindows(t *testing.T) {
	th := DefaultThresholds()

	// testNow is June 15: completed today, on June 5 (month to date but
	// outside the trailing week) and on Feb 1 (year to date only)
	records := []Record{
		closedRec(testNow.Add(-2*time.Hour), testNow),
		closedRec(testNow.AddDate(0, 0, -10), testNow.AddDate(0, 0, -10).Add(4*time.Hour)),
		closedRec(time.Date(2025, time.February, 1, 8, 0, 0, 0, time.UTC), time.Date(2025, time.February, 1, 20, 0, 0, 0, time.UTC)),
	}

	got := th.ComputePerformance(records, testNow, DefaultSLAHours)

	// Windows are cumulative by construction, not disjoint
	assert.Equal(t, 1, got.Completed.Week)
	assert.Equal(t, 2, got.Completed.Month)
	assert.Equal(t, 3, got.Completed.Year)
}

func TestComputePerformanceIgnoresOpenRecords(t *testing.T) {
	th := DefaultThresholds()

	records := []Record{
		{AssetID: uuid.New(), IssueDate: testNow.Add(-time.Hour), Status: RecordOpen},
		{AssetID: uuid.New(), IssueDate: testNow.Add(-time.Hour), Status: RecordInProgress},
	}

	got := th.ComputePerformance(records, testNow, DefaultSLAHours)
	assert.Equal(t, WindowCounts{}, got.Completed)
}

func TestComputePerformanceClampsNegativeDurations(t *testing.T) {
	th := DefaultThresholds()

	// Completion predates issue: a data-entry error that must not produce
	// a negative duration
	records := []Record{
		closedRec(testNow, testNow.Add(-6*time.Hour)),
	}

	got := th.ComputePerformance(records, testNow, DefaultSLAHours)

	require.Equal(t, 1, got.Completed.Week)
	assert.Equal(t, 0.0, got.AvgHours.Week)
	assert.Equal(t, 100.0, got.OnTimeRate.Week)
	assert.Equal(t, 1, got.ClampedDurations)
}

func TestComputePerformanceOverdueCount(t *testing.T) {
	th := DefaultThresholds()

	records := []Record{
		{AssetID: uuid.New(), IssueDate: testNow.AddDate(0, 0, -8), Status: RecordOpen},
		{AssetID: uuid.New(), IssueDate: testNow.AddDate(0, 0, -8), Status: RecordInProgress},
		{AssetID: uuid.New(), IssueDate: testNow.AddDate(0, 0, -3), Status: RecordOpen},
		closedRec(testNow.AddDate(0, 0, -20), testNow.AddDate(0, 0, -19)),
	}

	got := th.ComputePerformance(records, testNow, DefaultSLAHours)
	assert.Equal(t, 2, got.OverdueCount)
}

func TestComputePerformanceSLAFallback(t *testing.T) {
	th := DefaultThresholds()

	got := th.ComputePerformance(nil, testNow, 0)
	assert.Equal(t, float64(DefaultSLAHours), got.SLAHours)
}

func TestComputePerformanceIdempotent(t *testing.T) {
	th := DefaultThresholds()
	records := []Record{
		closedRec(testNow.Add(-30*time.Hour), testNow),
		{AssetID: uuid.New(), IssueDate: testNow.AddDate(0, 0, -9), Status: RecordOpen},
	}

	first := th.ComputePerformance(records, testNow, DefaultSLAHours)
	second := th.ComputePerformance(records, testNow, DefaultSLAHours)
	assert.Equal(t, first, second)
}

func TestComputeOverview(t *testing.T) {
	th := DefaultThresholds()

	assets := []Asset{
		{ID: uuid.New(), AssetType: TypePatrolCar, Status: StatusOperational},
		{ID: uuid.New(), AssetType: TypeArmoredVehicle, Status: StatusInMaintenance},
		{ID: uuid.New(), AssetType: TypeRifle, Status: StatusOperational},
		{ID: uuid.New(), AssetType: TypePistol, Status: StatusInMaintenance},
		{ID: uuid.New(), AssetType: TypeOther, Status: StatusOperational},
	}
	plans := []Plan{
		{AssetID: uuid.New(), NextDueDate: daysAhead(testNow, -2)},
		{AssetID: uuid.New(), NextDueDate: daysAhead(testNow, 3)},
	}

	got := th.ComputeOverview(assets, plans, testNow)

	assert.Equal(t, 2, got.TotalVehicles)
	assert.Equal(t, 1, got.VehiclesInMaintenance)
	assert.Equal(t, 2, got.TotalWeapons)
	assert.Equal(t, 1, got.OverduePlans)

	// Assets typed Other are counted as neither vehicles nor weapons
	assert.Equal(t, 4, got.TotalVehicles+got.TotalWeapons)
}
