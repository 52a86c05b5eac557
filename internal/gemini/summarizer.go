package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-timegrid/internal/timesheet"

	"google.golang.org/genai"
)

// Summarizer produces a short spoken-style recap of a finished timesheet.
type Summarizer struct {
	client *genai.Client
	model  string
}

func NewSummarizer(ctx context.Context, apiKey, model string) (*Summarizer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Summarizer{client: client, model: model}, nil
}

// Summarize asks the model for a brief recap of the matrix. A failure here
// only costs the recap, the caller keeps the rendered report either way.
func (s *Summarizer) Summarize(ctx context.Context, projectKey string, m *timesheet.Matrix) (string, error) {
	prompt := buildRecapPrompt(projectKey, m)

	resp, err := s.generateWithRetry(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate recap: %w", err)
	}

	return extractText(resp), nil
}

func (s *Summarizer) generateWithRetry(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
	const maxRetries = 3
	for attempt := range maxRetries {
		resp, err := s.client.Models.GenerateContent(ctx, "models/"+s.model,
			genai.Text(prompt), nil)
		if err == nil {
			return resp, nil
		}
		if !strings.Contains(err.Error(), "429") && !strings.Contains(err.Error(), "RESOURCE_EXHAUSTED") {
			return nil, err
		}
		wait := time.Duration(30*(attempt+1)) * time.Second
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return s.client.Models.GenerateContent(ctx, "models/"+s.model, genai.Text(prompt), nil)
}

func buildRecapPrompt(projectKey string, m *timesheet.Matrix) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Project %s, %s to %s.\n", projectKey, m.FromDate, m.ToDate)
	fmt.Fprintf(&sb, "Grand total: %.2fh.\n", m.GrandTotal)
	sb.WriteString("Hours per person:\n")
	for _, user := range m.Users {
		fmt.Fprintf(&sb, "- %s: %.2fh", user, m.UserTotals[user])
		if best, hours := busiestDay(m, user); best != "" {
			fmt.Fprintf(&sb, " (busiest day %s with %.2fh)", best, hours)
		}
		sb.WriteString("\n")
	}

	return fmt.Sprintf(`You are summarizing a team timesheet for a short status update.

DATA:
%s
Write 2-4 sentences in plain prose: overall effort, who logged the most and
the least, and anything notable such as weekend work or empty days. No lists,
no markdown, no advice.`, sb.String())
}

func busiestDay(m *timesheet.Matrix, user string) (date string, hours float64) {
	for _, day := range m.Days {
		cell := m.Cells[user][day.Date]
		if cell != nil && cell.Hours > hours {
			date, hours = day.Date, cell.Hours
		}
	}
	return date, hours
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	return resp.Text()
}
