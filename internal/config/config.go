package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
)

const DefaultGeminiModel = "gemini-2.5-flash"

type Config struct {
	JiraURL      string `json:"jira_url"`
	JiraEmail    string `json:"jira_email"`
	JiraAPIToken string `json:"jira_api_token"`
	ReportDir    string `json:"report_dir"`
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	GeminiModel  string `json:"gemini_model,omitempty"`
}

// Validate checks the settings the report cannot run without. The Gemini key
// is optional; without it the AI recap is skipped.
func (c *Config) Validate() error {
	if c.JiraURL == "" {
		return fmt.Errorf("jira_url is not configured")
	}
	if c.JiraAPIToken == "" {
		return fmt.Errorf("jira_api_token is not configured")
	}
	return nil
}

func configDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".timegrid")
}

func configPath() string {
	return filepath.Join(configDir(), "config.json")
}

func Exists() bool {
	_, err := os.Stat(configPath())
	return err == nil
}

func LoadFromFile() (*Config, error) {
	data, err := os.ReadFile(configPath())
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	c.JiraURL = strings.TrimRight(c.JiraURL, "/")
	if c.ReportDir == "" {
		c.ReportDir = "."
	}
	if c.GeminiModel == "" {
		c.GeminiModel = DefaultGeminiModel
	}
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(configDir(), 0700); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0600)
}

func RunSetup() (*Config, error) {
	var existing Config
	if cfg, err := LoadFromFile(); err == nil {
		existing = *cfg
	}
	existing.applyDefaults()

	cfg := existing

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Jira URL").
				Placeholder("https://your-org.atlassian.net").
				Value(&cfg.JiraURL).
				Validate(func(s string) error {
					if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
						return fmt.Errorf("URL must start with http:// or https://")
					}
					return nil
				}),
			huh.NewInput().
				Title("Jira Email").
				Placeholder("you@company.com").
				Value(&cfg.JiraEmail).
				Validate(func(s string) error {
					if !strings.Contains(s, "@") {
						return fmt.Errorf("must be a valid email address")
					}
					return nil
				}),
			huh.NewInput().
				Title("Jira API Token").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.JiraAPIToken),
		).Title("Jira Connection"),

		huh.NewGroup(
			huh.NewInput().
				Title("Report output directory").
				Placeholder(".").
				Value(&cfg.ReportDir),
		).Title("Reports"),

		huh.NewGroup(
			huh.NewInput().
				Title("Gemini API Key (optional, enables the AI recap)").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.GeminiAPIKey),
			huh.NewInput().
				Title("Gemini Model").
				Placeholder(DefaultGeminiModel).
				Value(&cfg.GeminiModel),
		).Title("AI Recap"),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := Save(&cfg); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("\nConfig saved to %s\n", configPath())
	return &cfg, nil
}
