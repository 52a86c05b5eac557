// Package report turns a finished timesheet matrix into an HTML file.
package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"go-timegrid/internal/timesheet"
)

//go:embed template.html
var templateHTML string

var tmpl = template.Must(template.New("timesheet").Parse(templateHTML))

type page struct {
	ProjectKey string
	Matrix     *timesheet.Matrix
}

// Render produces the HTML document for the matrix.
func Render(projectKey string, m *timesheet.Matrix) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page{ProjectKey: projectKey, Matrix: m}); err != nil {
		return nil, fmt.Errorf("render timesheet: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the matrix into dir and returns the file path.
func WriteFile(dir, projectKey string, m *timesheet.Matrix) (string, error) {
	html, err := Render(projectKey, m)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("timesheet_%s_%s_%s.html", projectKey, m.FromDate, m.ToDate)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, html, 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
