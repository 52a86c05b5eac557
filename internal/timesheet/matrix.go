package timesheet

import (
	"fmt"
	"math"
	"sort"
	"time"

	"go-timegrid/internal/timeparse"
)

// MaxRangeDays caps the reporting window, inclusive of both endpoints.
const MaxRangeDays = 30

// Day is one column of the date range. Weekend is informational, used only
// for styling; weekend dates stay in the range.
type Day struct {
	Date    string
	Weekday string
	Weekend bool
}

// Cell holds one user's aggregated hours for one day. Hours is rounded to two
// decimals; Details keeps one line per contributing worklog, in source order.
type Cell struct {
	Hours   float64
	Details []string
}

// Matrix is the dense user × date timesheet grid. Every (user, date) pair has
// an entry in Cells; a nil cell means no work was logged that day.
type Matrix struct {
	FromDate   string
	ToDate     string
	Days       []Day
	Users      []string
	Cells      map[string]map[string]*Cell
	UserTotals map[string]float64
	GrandTotal float64
}

// ValidateRange rejects inverted ranges and ranges longer than MaxRangeDays.
// It runs before any query; Aggregate assumes a range that passed it.
func ValidateRange(from, to time.Time) error {
	from, to = midnight(from), midnight(to)
	if from.After(to) {
		return fmt.Errorf("from date must not be later than to date")
	}
	if int(to.Sub(from).Hours()/24)+1 > MaxRangeDays {
		return fmt.Errorf("maximum date range is %d days", MaxRangeDays)
	}
	return nil
}

// Aggregate folds the records into a dense matrix over [from, to]. All totals
// accumulate unrounded hours and are rounded exactly once at the end.
func Aggregate(records []Record, from, to time.Time) *Matrix {
	from, to = midnight(from), midnight(to)

	m := &Matrix{
		FromDate:   from.Format("2006-01-02"),
		ToDate:     to.Format("2006-01-02"),
		Cells:      make(map[string]map[string]*Cell),
		UserTotals: make(map[string]float64),
	}

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		m.Days = append(m.Days, Day{
			Date:    d.Format("2006-01-02"),
			Weekday: d.Format("Mon"),
			Weekend: wd == time.Saturday || wd == time.Sunday,
		})
	}

	seen := make(map[string]bool)
	for _, r := range records {
		if !seen[r.User] {
			seen[r.User] = true
			m.Users = append(m.Users, r.User)
		}
	}
	sort.Strings(m.Users)

	grand := 0.0
	for _, user := range m.Users {
		m.Cells[user] = make(map[string]*Cell, len(m.Days))
		userTotal := 0.0
		for _, day := range m.Days {
			var cell *Cell
			total := 0.0
			for _, r := range records {
				if r.User != user || r.Date.Format("2006-01-02") != day.Date {
					continue
				}
				if cell == nil {
					cell = &Cell{}
				}
				hours := timeparse.Parse(r.TimeSpent)
				total += hours
				cell.Details = append(cell.Details, fmt.Sprintf(
					"[%s] %s - %s (%gh)", r.IssueKey, r.Summary, r.TimeSpent, round2(hours)))
			}
			if cell != nil {
				cell.Hours = round2(total)
				userTotal += total
				grand += total
			}
			m.Cells[user][day.Date] = cell
		}
		m.UserTotals[user] = round2(userTotal)
	}
	m.GrandTotal = round2(grand)

	return m
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
