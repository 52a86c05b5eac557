package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go-timegrid/internal/config"
	"go-timegrid/internal/gemini"
	"go-timegrid/internal/jira"
	"go-timegrid/internal/session"

	"github.com/pterm/pterm"
)

var Version = "dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Println("timegrid version", Version)
		return
	}

	if len(os.Args) > 1 && os.Args[1] == "config" {
		if _, err := config.RunSetup(); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		return
	}

	cfg, err := config.LoadFromFile()
	if err != nil {
		if !config.Exists() {
			fmt.Println("No configuration found. Let's set it up!")
			fmt.Println()
			cfg, err = config.RunSetup()
			if err != nil {
				pterm.Error.Println(err.Error())
				os.Exit(1)
			}
		} else {
			pterm.Error.Println("Failed to load config: " + err.Error())
			os.Exit(1)
		}
	}

	if err := cfg.Validate(); err != nil {
		pterm.Error.Println(err.Error())
		pterm.Println(pterm.Gray("Run `timegrid config` to fix the settings."))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	jiraClient := jira.NewClient(cfg.JiraURL, cfg.JiraEmail, cfg.JiraAPIToken)

	var summarizer *gemini.Summarizer
	if cfg.GeminiAPIKey != "" {
		summarizer, err = gemini.NewSummarizer(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			pterm.Warning.Println("AI recap disabled: " + err.Error())
		}
	}

	runner := session.NewRunner(jiraClient, summarizer, cfg)
	if err := runner.Run(ctx); err != nil {
		if ctx.Err() != nil {
			pterm.Println()
			pterm.Println(pterm.Gray("Interrupted. Bye!"))
			os.Exit(0)
		}
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}
