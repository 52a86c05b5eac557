package session

import (
	"context"
	"time"

	"go-timegrid/internal/config"
	"go-timegrid/internal/gemini"
	"go-timegrid/internal/jira"
	"go-timegrid/internal/report"
	"go-timegrid/internal/timesheet"
	"go-timegrid/internal/ui"

	"github.com/pterm/pterm"
)

type Runner struct {
	jira       *jira.Client
	summarizer *gemini.Summarizer
	reportDir  string

	lastMatrix *timesheet.Matrix
}

// NewRunner wires the session. summarizer may be nil, the AI recap is then
// skipped.
func NewRunner(jiraClient *jira.Client, summarizer *gemini.Summarizer, cfg *config.Config) *Runner {
	return &Runner{
		jira:       jiraClient,
		summarizer: summarizer,
		reportDir:  cfg.ReportDir,
	}
}

func (r *Runner) Run(ctx context.Context) error {
	ui.PrintWelcome()

	spinner, _ := pterm.DefaultSpinner.Start("Fetching projects from Jira...")
	projects, err := r.jira.Projects(ctx)
	spinner.Stop()
	if err != nil {
		ui.PrintError("Failed to fetch projects: " + err.Error())
		return err
	}
	if len(projects) == 0 {
		ui.PrintNoProjects()
		return nil
	}
	ui.PrintProjectCount(projects)

	projectKey, err := ui.SelectProject(projects)
	if err != nil {
		return err
	}

	if err := r.runReport(ctx, projectKey); err != nil {
		return err
	}

	// Command loop: keep producing reports until the user leaves.
	for {
		input := ui.ReadInput("> ")
		if input == "" {
			continue
		}
		if ui.IsExitCommand(input) {
			ui.PrintFarewell()
			return nil
		}

		cmd, ok := ui.ParseCommand(input)
		if !ok {
			ui.PrintCommands()
			continue
		}

		switch cmd.Name {
		case "/report":
			if err := r.runReport(ctx, projectKey); err != nil {
				return err
			}
		case "/project":
			projectKey, err = ui.SelectProject(projects)
			if err != nil {
				return err
			}
			if err := r.runReport(ctx, projectKey); err != nil {
				return err
			}
		case "/details":
			if r.lastMatrix == nil {
				ui.PrintStatus("No report yet. Run /report first.")
				continue
			}
			ui.PrintDayDetails(r.lastMatrix)
		case "/config":
			if _, err := config.RunSetup(); err != nil {
				ui.PrintError(err.Error())
			}
			ui.PrintStatus("Settings apply on next start.")
		case "/help":
			ui.PrintCommands()
		default:
			ui.PrintCommands()
		}
	}
}

// runReport drives one query: date range, fetch, aggregate, render.
func (r *Runner) runReport(ctx context.Context, projectKey string) error {
	from, to, err := r.readValidRange()
	if err != nil {
		return err
	}

	spinner, _ := pterm.DefaultSpinner.Start("Searching issues with worklogs...")
	issues, err := r.jira.SearchWorklogIssues(ctx, projectKey, from, to)
	spinner.Stop()
	if err != nil {
		ui.PrintError("Issue search failed: " + err.Error())
		return err
	}
	ui.PrintIssueCount(len(issues))

	spinner, _ = pterm.DefaultSpinner.Start("Collecting worklogs...")
	records, skipped := timesheet.Collect(ctx, r.jira, issues, from, to)
	spinner.Stop()
	ui.PrintSkippedIssues(skipped)

	if len(records) == 0 {
		ui.PrintNoData(from.Format("2006-01-02"), to.Format("2006-01-02"))
		return nil
	}

	matrix := timesheet.Aggregate(records, from, to)
	r.lastMatrix = matrix

	ui.PrintMatrix(matrix)

	path, err := report.WriteFile(r.reportDir, projectKey, matrix)
	if err != nil {
		ui.PrintError("Failed to write report: " + err.Error())
	} else {
		ui.PrintReportSaved(path)
	}

	r.printRecap(ctx, projectKey, matrix)
	ui.PrintCommands()
	return nil
}

// readValidRange re-prompts until the range passes validation or the user
// gives up.
func (r *Runner) readValidRange() (from, to time.Time, err error) {
	defaultTo := time.Now()
	defaultFrom := defaultTo.AddDate(0, 0, -6)

	for {
		from, to, err = ui.ReadDateRange(defaultFrom, defaultTo)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if vErr := timesheet.ValidateRange(from, to); vErr != nil {
			ui.PrintError(vErr.Error())
			if !ui.ConfirmYesNo("Try another range?") {
				return time.Time{}, time.Time{}, vErr
			}
			defaultFrom, defaultTo = from, to
			continue
		}
		return from, to, nil
	}
}

func (r *Runner) printRecap(ctx context.Context, projectKey string, matrix *timesheet.Matrix) {
	if r.summarizer == nil {
		return
	}

	spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start("Writing AI recap...")
	recap, err := r.summarizer.Summarize(ctx, projectKey, matrix)
	spinner.Stop()
	if err != nil {
		ui.PrintStatus("AI recap unavailable: " + err.Error())
		return
	}
	ui.PrintTypewriter(recap)
}
