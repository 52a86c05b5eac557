package ui

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"go-timegrid/internal/jira"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

type inputModel struct {
	textInput textinput.Model
	submitted bool
	cancelled bool
}

func newInputModel(prompt string) inputModel {
	ti := textinput.New()
	ti.Prompt = pterm.Bold.Sprint(pterm.Cyan(prompt))
	ti.Focus()
	ti.SetSuggestions(CommandNames())
	ti.ShowSuggestions = true
	return inputModel{textInput: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	return m.textInput.View()
}

// ReadInput shows a one-line prompt with slash-command suggestions.
func ReadInput(prompt string) string {
	m := newInputModel(prompt)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return ""
	}
	result := finalModel.(inputModel)
	if result.cancelled {
		return ""
	}
	return strings.TrimSpace(result.textInput.Value())
}

func ConfirmYesNo(question string) bool {
	s := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("%s [Y/n]: ", pterm.Bold.Sprint(question))
		if !s.Scan() {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(s.Text())) {
		case "", "y", "yes":
			return true
		case "n", "no":
			return false
		}
	}
}

// SelectProject asks the user to pick a project, options sorted by display
// name the way the tracker's own picker lists them.
func SelectProject(projects []jira.Project) (string, error) {
	options := make([]huh.Option[string], 0, len(projects))
	for _, p := range projects {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", p.Name, p.Key), p.Key))
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Key < options[j].Key
	})

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose a project").
				Options(options...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("select project: %w", err)
	}
	return selected, nil
}

// ReadDateRange collects the reporting window. Both dates must parse as
// YYYY-MM-DD; range-level checks happen after the form.
func ReadDateRange(defaultFrom, defaultTo time.Time) (from, to time.Time, err error) {
	fromStr := defaultFrom.Format("2006-01-02")
	toStr := defaultTo.Format("2006-01-02")

	validateDate := func(s string) error {
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return fmt.Errorf("invalid date, use YYYY-MM-DD")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("From date (YYYY-MM-DD)").
				Value(&fromStr).
				Validate(validateDate),
			huh.NewInput().
				Title("To date (YYYY-MM-DD)").
				Value(&toStr).
				Validate(validateDate),
		),
	)

	if err := form.Run(); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("read date range: %w", err)
	}

	from, _ = time.Parse("2006-01-02", fromStr)
	to, _ = time.Parse("2006-01-02", toStr)
	return from, to, nil
}
