package ui

import (
	"strings"

	"github.com/pterm/pterm"
)

type Command struct {
	Name string
	Args string
}

type CommandDef struct {
	Name        string
	Description string
}

var AvailableCommands = []CommandDef{
	{Name: "/report", Description: "Run another report for the same project"},
	{Name: "/project", Description: "Switch project and run a report"},
	{Name: "/details", Description: "Show worklog details of the last report"},
	{Name: "/config", Description: "Open settings"},
	{Name: "/help", Description: "Show this list"},
	{Name: "/exit", Description: "Quit"},
}

func CommandNames() []string {
	names := make([]string, len(AvailableCommands))
	for i, cmd := range AvailableCommands {
		names[i] = cmd.Name
	}
	return names
}

func ParseCommand(input string) (Command, bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return Command{}, false
	}
	parts := strings.SplitN(input, " ", 2)
	cmd := Command{Name: strings.ToLower(parts[0])}
	if len(parts) > 1 {
		cmd.Args = strings.TrimSpace(parts[1])
	}
	return cmd, true
}

func PrintCommands() {
	pterm.Println(pterm.Gray("Available commands:"))
	for _, cmd := range AvailableCommands {
		pterm.Println(pterm.Cyan("  "+cmd.Name) + pterm.Gray("  "+cmd.Description))
	}
	pterm.Println()
}

func IsExitCommand(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "/exit", "exit", "quit":
		return true
	}
	return false
}
