package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// startedLayout is Jira's worklog timestamp format.
const startedLayout = "2006-01-02T15:04:05.000-0700"

const searchBatchSize = 100

type Client struct {
	baseURL  string
	apiToken string
	http     *http.Client
}

func NewClient(baseURL, email, apiToken string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiToken: apiToken,
		http:     &http.Client{},
	}
}

// Projects returns all projects visible to the configured token.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var entries []projectEntry
	if err := c.get(ctx, c.baseURL+"/rest/api/2/project", &entries); err != nil {
		return nil, err
	}

	projects := make([]Project, 0, len(entries))
	for _, e := range entries {
		projects = append(projects, Project{Key: e.Key, Name: e.Name})
	}
	return projects, nil
}

// SearchWorklogIssues returns every issue in the project that has worklogs
// dated inside [from, to]. Results are fetched in batches until the server
// returns a short page.
func (c *Client) SearchWorklogIssues(ctx context.Context, projectKey string, from, to time.Time) ([]Issue, error) {
	jql := fmt.Sprintf(
		`project = %q AND worklogDate >= %q AND worklogDate <= %q ORDER BY updated DESC`,
		projectKey, from.Format("2006-01-02"), to.Format("2006-01-02"),
	)

	u, err := url.Parse(c.baseURL + "/rest/api/2/search")
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}

	var issues []Issue
	for startAt := 0; ; {
		q := u.Query()
		q.Set("jql", jql)
		q.Set("fields", "summary")
		q.Set("startAt", fmt.Sprintf("%d", startAt))
		q.Set("maxResults", fmt.Sprintf("%d", searchBatchSize))
		u.RawQuery = q.Encode()

		var sr searchResponse
		if err := c.get(ctx, u.String(), &sr); err != nil {
			return nil, err
		}
		if len(sr.Issues) == 0 {
			break
		}

		for _, si := range sr.Issues {
			issues = append(issues, Issue{Key: si.Key, Summary: si.Fields.Summary})
		}
		startAt += len(sr.Issues)
		if len(sr.Issues) < searchBatchSize {
			break
		}
	}

	return issues, nil
}

// Worklogs returns all worklog entries recorded on the issue.
func (c *Client) Worklogs(ctx context.Context, issueKey string) ([]Worklog, error) {
	endpoint := c.baseURL + "/rest/api/2/issue/" + url.PathEscape(issueKey) + "/worklog"

	var lr worklogListResponse
	if err := c.get(ctx, endpoint, &lr); err != nil {
		return nil, err
	}

	logs := make([]Worklog, 0, len(lr.Worklogs))
	for _, e := range lr.Worklogs {
		started, err := time.Parse(startedLayout, e.Started)
		if err != nil {
			return nil, fmt.Errorf("worklog started %q: %w", e.Started, err)
		}
		author := e.Author.DisplayName
		if author == "" {
			author = e.Author.Name
		}
		logs = append(logs, Worklog{
			Author:    author,
			Started:   started,
			TimeSpent: e.TimeSpent,
		})
	}
	return logs, nil
}

func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("jira request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("jira returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
