package ui

import (
	"fmt"
	"strings"

	"go-timegrid/internal/jira"
	"go-timegrid/internal/timesheet"

	"github.com/pterm/pterm"
)

func PrintWelcome() {
	pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack, pterm.Bold)).
		Println("Jira Timesheet Grid")
	pterm.Println(pterm.Gray("Per-user, per-day worklog reports for a Jira project"))
	pterm.Println()
}

// PrintMatrix renders the timesheet grid: dates as rows, users as columns,
// totals at the bottom. Weekend rows are dimmed.
func PrintMatrix(m *timesheet.Matrix) {
	header := []string{"Date", "Day"}
	header = append(header, m.Users...)

	tableData := pterm.TableData{header}
	for _, day := range m.Days {
		row := []string{day.Date, day.Weekday}
		for _, user := range m.Users {
			cell := m.Cells[user][day.Date]
			if cell == nil {
				row = append(row, "")
			} else {
				row = append(row, fmt.Sprintf("%.2f", cell.Hours))
			}
		}
		if day.Weekend {
			for i, v := range row {
				row[i] = pterm.Gray(v)
			}
		}
		tableData = append(tableData, row)
	}

	totals := []string{pterm.Bold.Sprint("Total"), ""}
	for _, user := range m.Users {
		totals = append(totals, pterm.Bold.Sprint(pterm.FgYellow.Sprintf("%.2f", m.UserTotals[user])))
	}
	tableData = append(tableData, totals)

	pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(tableData).Render()
	pterm.Printfln("%s %s", pterm.Bold.Sprint("Grand total:"),
		pterm.Bold.Sprint(pterm.FgYellow.Sprintf("%.2fh", m.GrandTotal)))
	pterm.Println()
}

// PrintDayDetails lists every populated cell with its worklog detail lines.
func PrintDayDetails(m *timesheet.Matrix) {
	for _, user := range m.Users {
		printed := false
		for _, day := range m.Days {
			cell := m.Cells[user][day.Date]
			if cell == nil {
				continue
			}
			if !printed {
				pterm.DefaultSection.WithLevel(2).Println(user)
				printed = true
			}
			pterm.Println(pterm.Cyan(day.Date) + pterm.Gray(" ("+day.Weekday+")"))
			for _, line := range cell.Details {
				pterm.Println(pterm.Gray("  " + line))
			}
		}
	}
	pterm.Println()
}

func PrintProjectCount(projects []jira.Project) {
	pterm.Success.Printfln("Found %d projects", len(projects))
	pterm.Println()
}

func PrintIssueCount(n int) {
	pterm.Success.Printfln("Found %d issues with worklogs in range", n)
}

func PrintSkippedIssues(keys []string) {
	if len(keys) == 0 {
		return
	}
	pterm.Warning.Printfln("Could not fetch worklogs for %d issue(s), continuing without them: %s",
		len(keys), strings.Join(keys, ", "))
}

func PrintReportSaved(path string) {
	pterm.Success.Printfln("Report written to %s", path)
	pterm.Println()
}

func PrintNoProjects() {
	pterm.Warning.Println("No projects are visible to this token.")
	pterm.Println(pterm.Gray("Check the Jira URL and API token in the config."))
}

func PrintNoData(fromDate, toDate string) {
	pterm.Warning.Printfln("No worklogs found between %s and %s.", fromDate, toDate)
	pterm.Println(pterm.Gray("Try a different project or a wider date range."))
}

func PrintCancelled() {
	pterm.Warning.Println("Cancelled.")
}

func PrintFarewell() {
	pterm.Println()
	pterm.Println(pterm.Gray("Bye!"))
	pterm.Println()
}

func PrintError(msg string) {
	pterm.Println(pterm.Gray("⚠ " + msg))
}

func PrintStatus(msg string) {
	pterm.Println(pterm.Gray(msg))
}
