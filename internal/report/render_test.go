package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-timegrid/internal/timesheet"
)

func sampleMatrix(t *testing.T) *timesheet.Matrix {
	t.Helper()
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	}
	records := []timesheet.Record{
		{User: "Alice", Date: day(24), IssueKey: "ISS-1", Summary: "Fix bug", TimeSpent: "4h"},
		{User: "Bob", Date: day(24), IssueKey: "ISS-2", Summary: "Write docs", TimeSpent: "30m"},
	}
	return timesheet.Aggregate(records, day(24), day(25))
}

func TestRender(t *testing.T) {
	html, err := Render("ISS", sampleMatrix(t))
	require.NoError(t, err)

	s := string(html)
	assert.Contains(t, s, "Timesheet: ISS")
	assert.Contains(t, s, "2025-03-24")
	assert.Contains(t, s, "<th>Alice</th>")
	assert.Contains(t, s, "<th>Bob</th>")
	assert.Contains(t, s, "[ISS-1] Fix bug - 4h (4h)")
	assert.Contains(t, s, "4.00h")
	assert.Contains(t, s, "0.50h")
	assert.Contains(t, s, "Grand total: 4.50h")
}

func TestRenderEscapesSummaries(t *testing.T) {
	day := time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC)
	records := []timesheet.Record{
		{User: "Alice", Date: day, IssueKey: "ISS-1", Summary: "<script>alert(1)</script>", TimeSpent: "1h"},
	}
	m := timesheet.Aggregate(records, day, day)

	html, err := Render("ISS", m)
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>alert(1)</script>")
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFile(dir, "ISS", sampleMatrix(t))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "timesheet_ISS_2025-03-24_2025-03-25.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Grand total")
}
