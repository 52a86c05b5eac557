package timesheet

import (
	"context"
	"time"

	"go-timegrid/internal/jira"
)

// Record is one worklog entry normalized for aggregation: who logged it, on
// which calendar day, against which issue, and the tracker's raw duration text.
type Record struct {
	User      string
	Date      time.Time
	IssueKey  string
	Summary   string
	TimeSpent string
}

// WorklogSource yields the worklog entries of a single issue. *jira.Client
// satisfies it.
type WorklogSource interface {
	Worklogs(ctx context.Context, issueKey string) ([]jira.Worklog, error)
}

// Collect fetches the worklogs of every issue and keeps the entries whose
// start date falls inside [from, to], both ends inclusive. Time-of-day is
// discarded. An issue whose worklogs cannot be retrieved is dropped and its
// key reported in skipped; the rest of the report is built from what remains.
// Record order follows issue order, then worklog order within each issue.
func Collect(ctx context.Context, source WorklogSource, issues []jira.Issue, from, to time.Time) (records []Record, skipped []string) {
	from = midnight(from)
	to = midnight(to)

	for _, issue := range issues {
		logs, err := source.Worklogs(ctx, issue.Key)
		if err != nil {
			skipped = append(skipped, issue.Key)
			continue
		}
		for _, log := range logs {
			date := midnight(log.Started)
			if date.Before(from) || date.After(to) {
				continue
			}
			records = append(records, Record{
				User:      log.Author,
				Date:      date,
				IssueKey:  issue.Key,
				Summary:   issue.Summary,
				TimeSpent: log.TimeSpent,
			})
		}
	}
	return records, skipped
}

// midnight truncates a timestamp to its calendar date in UTC.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
