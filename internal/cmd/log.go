package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/CarsonBain/wins/internal/domain"
	"github.com/CarsonBain/wins/internal/services"
	"github.com/CarsonBain/wins/internal/theme"
)

// LogCmd appends a win
type LogCmd struct {
	Date    string   `help:"Override date (YYYY-MM-DD or ISO 8601), for retroactive entries"`
	Message string   `arg:"" help:"What you accomplished"`
	Tag     []string `help:"Comma-separated tags" sep:","`
}

// Run executes the log command
func (l *LogCmd) Run(cli *CLI) error {
	var date *time.Time
	if l.Date != "" {
		parsed, err := domain.ParseDate(l.Date)
		if err != nil {
			return err
		}
		date = &parsed
	}

	container, err := cli.openContainer()
	if err != nil {
		return err
	}
	defer container.Close()

	win, err := container.WinService.Log(context.Background(), services.LogParams{
		Date:    date,
		Message: l.Message,
		Tags:    l.Tag,
	})
	if err != nil {
		return err
	}

	tags := ""
	if len(win.Tags) > 0 {
		tags = theme.MutedStyle.Render(" [" + strings.Join(win.Tags, ", ") + "]")
	}
	fmt.Println(theme.SuccessStyle.Render("✓") + " Win logged:" + tags)
	fmt.Println(theme.ContentStyle.Render("  " + win.Content))
	return nil
}
