package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/CarsonBain/wins/internal/domain"
	"github.com/CarsonBain/wins/internal/render"
	"github.com/CarsonBain/wins/internal/services"
	"github.com/CarsonBain/wins/internal/theme"
	"github.com/CarsonBain/wins/internal/ui"
)

// DateRangeFlags are shared by every report command
type DateRangeFlags struct {
	Since string `help:"Filter from date (YYYY-MM-DD)"`
	Until string `help:"Filter until date (YYYY-MM-DD)"`
}

// SummaryCmd generates a short accomplishment summary
type SummaryCmd struct {
	DateRangeFlags
}

// Run executes the summary command
func (s *SummaryCmd) Run(cli *CLI) error {
	return runReport(cli, services.ReportSummary, s.DateRangeFlags)
}

// ThemesCmd identifies recurring themes
type ThemesCmd struct {
	DateRangeFlags
}

// Run executes the themes command
func (t *ThemesCmd) Run(cli *CLI) error {
	return runReport(cli, services.ReportThemes, t.DateRangeFlags)
}

// ReviewCmd writes a performance review narrative
type ReviewCmd struct {
	DateRangeFlags
	Format string `help:"Output format: star | bullet | prose" default:"bullet"`
}

// Run executes the review command
func (r *ReviewCmd) Run(cli *CLI) error {
	if cli.config.OpenRouterAPIKey == "" {
		return domain.ErrMissingAPIKey
	}
	kind, err := services.ParseReviewFormat(r.Format)
	if err != nil {
		return err
	}
	return runReport(cli, kind, r.DateRangeFlags)
}

func runReport(cli *CLI, kind services.ReportKind, flags DateRangeFlags) error {
	if cli.config.OpenRouterAPIKey == "" {
		return domain.ErrMissingAPIKey
	}
	dateRange, err := domain.ParseDateRange(flags.Since, flags.Until)
	if err != nil {
		return err
	}

	container, err := cli.openContainer()
	if err != nil {
		return err
	}
	defer container.Close()

	var response string
	err = ui.RunWithSpinner(context.Background(), kind.Progress(), func(ctx context.Context) error {
		var err error
		response, err = container.ReportService.Generate(ctx, services.GenerateParams{
			APIKey: cli.config.OpenRouterAPIKey,
			Kind:   kind,
			Range:  dateRange,
		})
		return err
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorStyle.Render("✗ Generation failed"))
		return err
	}

	fmt.Println()
	fmt.Println(theme.TitleStyle.Render(kind.Title()))
	fmt.Println(theme.Rule(theme.TitleRuleStyle, theme.RuleWidth))
	fmt.Println(render.Markdown(response))
	fmt.Println()
	return nil
}
