package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRange(t *testing.T) {
	from := day(2025, 3, 24)

	assert.NoError(t, ValidateRange(from, from))
	assert.NoError(t, ValidateRange(from, from.AddDate(0, 0, 29)))
	assert.Error(t, ValidateRange(from, from.AddDate(0, 0, 30)))
	assert.Error(t, ValidateRange(from, from.AddDate(0, 0, -1)))
}

func TestAggregateScenario(t *testing.T) {
	records := []Record{
		{User: "Alice", Date: day(2025, 3, 24), IssueKey: "ISS-1", Summary: "Fix bug", TimeSpent: "4h"},
		{User: "Alice", Date: day(2025, 3, 25), IssueKey: "ISS-1", Summary: "Fix bug", TimeSpent: "1d"},
		{User: "Bob", Date: day(2025, 3, 24), IssueKey: "ISS-2", Summary: "Write docs", TimeSpent: "30m"},
	}

	m := Aggregate(records, day(2025, 3, 24), day(2025, 3, 25))

	assert.Equal(t, "2025-03-24", m.FromDate)
	assert.Equal(t, "2025-03-25", m.ToDate)
	assert.Equal(t, []string{"Alice", "Bob"}, m.Users)

	require.Len(t, m.Days, 2)
	assert.Equal(t, "2025-03-24", m.Days[0].Date)
	assert.Equal(t, "Mon", m.Days[0].Weekday)
	assert.False(t, m.Days[0].Weekend)

	require.NotNil(t, m.Cells["Alice"]["2025-03-24"])
	assert.Equal(t, 4.0, m.Cells["Alice"]["2025-03-24"].Hours)
	assert.Equal(t, 8.0, m.Cells["Alice"]["2025-03-25"].Hours)
	assert.Equal(t, 0.5, m.Cells["Bob"]["2025-03-24"].Hours)
	assert.Nil(t, m.Cells["Bob"]["2025-03-25"])

	assert.Equal(t, map[string]float64{"Alice": 12.0, "Bob": 0.5}, m.UserTotals)
	assert.Equal(t, 12.5, m.GrandTotal)

	require.Len(t, m.Cells["Bob"]["2025-03-24"].Details, 1)
	assert.Equal(t, "[ISS-2] Write docs - 30m (0.5h)", m.Cells["Bob"]["2025-03-24"].Details[0])
}

func TestAggregateMatrixIsDense(t *testing.T) {
	records := []Record{
		{User: "Alice", Date: day(2025, 3, 24), IssueKey: "ISS-1", Summary: "Fix bug", TimeSpent: "1h"},
	}

	from, to := day(2025, 3, 22), day(2025, 3, 28)
	m := Aggregate(records, from, to)

	require.Len(t, m.Days, 7)
	assert.Equal(t, "2025-03-22", m.Days[0].Date)
	assert.Equal(t, "2025-03-28", m.Days[6].Date)
	assert.True(t, m.Days[0].Weekend)  // Saturday
	assert.True(t, m.Days[1].Weekend)  // Sunday
	assert.False(t, m.Days[2].Weekend) // Monday

	for _, user := range m.Users {
		for _, d := range m.Days {
			_, ok := m.Cells[user][d.Date]
			assert.True(t, ok, "cell missing for %s on %s", user, d.Date)
		}
	}
}

func TestAggregateRoundsTotalsOnce(t *testing.T) {
	// Three 20-minute entries are 0.3333...h each. Rounding per cell and
	// summing would give 0.99; summing first must give 1.0.
	records := []Record{
		{User: "Alice", Date: day(2025, 3, 24), IssueKey: "ISS-1", Summary: "Fix bug", TimeSpent: "20m"},
		{User: "Alice", Date: day(2025, 3, 25), IssueKey: "ISS-1", Summary: "Fix bug", TimeSpent: "20m"},
		{User: "Alice", Date: day(2025, 3, 26), IssueKey: "ISS-1", Summary: "Fix bug", TimeSpent: "20m"},
	}

	m := Aggregate(records, day(2025, 3, 24), day(2025, 3, 26))

	assert.Equal(t, 0.33, m.Cells["Alice"]["2025-03-24"].Hours)
	assert.Equal(t, 1.0, m.UserTotals["Alice"])
	assert.Equal(t, 1.0, m.GrandTotal)
}

func TestAggregateMultipleEntriesPerDay(t *testing.T) {
	records := []Record{
		{User: "Alice", Date: day(2025, 3, 24), IssueKey: "ISS-1", Summary: "Fix bug", TimeSpent: "2h"},
		{User: "Bob", Date: day(2025, 3, 24), IssueKey: "ISS-2", Summary: "Write docs", TimeSpent: "1h"},
		{User: "Alice", Date: day(2025, 3, 24), IssueKey: "ISS-3", Summary: "Review", TimeSpent: "45m"},
	}

	m := Aggregate(records, day(2025, 3, 24), day(2025, 3, 24))

	cell := m.Cells["Alice"]["2025-03-24"]
	require.NotNil(t, cell)
	assert.Equal(t, 2.75, cell.Hours)
	require.Len(t, cell.Details, 2)
	assert.Equal(t, "[ISS-1] Fix bug - 2h (2h)", cell.Details[0])
	assert.Equal(t, "[ISS-3] Review - 45m (0.75h)", cell.Details[1])
}

func TestAggregateIgnoresDatesOutsideRange(t *testing.T) {
	records := []Record{
		{User: "Alice", Date: day(2025, 3, 24), IssueKey: "ISS-1", Summary: "Fix bug", TimeSpent: "2h"},
	}

	m := Aggregate(records, day(2025, 3, 25), day(2025, 3, 26))

	for _, d := range m.Days {
		assert.NotEqual(t, "2025-03-24", d.Date)
		assert.Nil(t, m.Cells["Alice"][d.Date])
	}
	assert.Equal(t, 0.0, m.UserTotals["Alice"])
	assert.Equal(t, 0.0, m.GrandTotal)
}
