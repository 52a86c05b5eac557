package ui

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// PrintTypewriter prints the AI recap with a typewriter effect, stripping
// markdown decoration first.
func PrintTypewriter(text string) {
	text = stripMarkdown(text)
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	fmt.Println()
	pterm.Print(pterm.FgMagenta.Sprint("AI: "))
	for _, ch := range text {
		fmt.Print(string(ch))
		time.Sleep(10 * time.Millisecond)
	}
	fmt.Println()
	fmt.Println()
}

var (
	reBold       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic     = regexp.MustCompile(`\*(.+?)\*`)
	reInlineCode = regexp.MustCompile("`([^`]+)`")
	reHeading    = regexp.MustCompile(`(?m)^#{1,3}\s+`)
)

func stripMarkdown(text string) string {
	text = reBold.ReplaceAllString(text, "$1")
	text = reItalic.ReplaceAllString(text, "$1")
	text = reInlineCode.ReplaceAllString(text, "$1")
	text = reHeading.ReplaceAllString(text, "")
	return text
}
