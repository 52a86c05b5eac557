package jira

import "time"

type Project struct {
	Key  string
	Name string
}

type Issue struct {
	Key     string
	Summary string
}

// Worklog is a single logged duration against an issue. TimeSpent keeps the
// tracker's raw duration text ("2h 30m"); Started keeps the full timestamp,
// only its date portion matters downstream.
type Worklog struct {
	Author    string
	Started   time.Time
	TimeSpent string
}

type projectEntry struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type searchResponse struct {
	StartAt    int           `json:"startAt"`
	MaxResults int           `json:"maxResults"`
	Total      int           `json:"total"`
	Issues     []searchIssue `json:"issues"`
}

type searchIssue struct {
	Key    string      `json:"key"`
	Fields issueFields `json:"fields"`
}

type issueFields struct {
	Summary string `json:"summary"`
}

type worklogListResponse struct {
	Worklogs []worklogEntry `json:"worklogs"`
}

type worklogEntry struct {
	Author    worklogAuthor `json:"author"`
	Started   string        `json:"started"`
	TimeSpent string        `json:"timeSpent"`
}

type worklogAuthor struct {
	DisplayName string `json:"displayName"`
	Name        string `json:"name"`
}
