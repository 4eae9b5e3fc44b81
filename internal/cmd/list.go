package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/CarsonBain/wins/internal/adapters/archive"
	"github.com/CarsonBain/wins/internal/domain"
	"github.com/CarsonBain/wins/internal/services"
	"github.com/CarsonBain/wins/internal/theme"
)

// ListCmd prints recorded wins
type ListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	PRs    bool   `name:"prs" help:"Include merged PRs"`
	Since  string `help:"Filter from date (YYYY-MM-DD)"`
	Until  string `help:"Filter until date (YYYY-MM-DD)"`
}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	dateRange, err := domain.ParseDateRange(l.Since, l.Until)
	if err != nil {
		return err
	}

	container, err := cli.openContainer()
	if err != nil {
		return err
	}
	defer container.Close()

	result, err := container.WinService.List(context.Background(), services.ListParams{
		IncludePRs: l.PRs,
		Range:      dateRange,
	})
	if err != nil {
		return err
	}

	if l.Format == "json" {
		return archive.Encode(os.Stdout, &domain.Store{PRs: result.PRs, Wins: result.Wins}, archive.FormatJSON)
	}
	printListing(result)
	return nil
}

func printListing(result services.ListResult) {
	if result.Empty() {
		fmt.Println(theme.MutedStyle.Render("No entries found."))
		return
	}

	if len(result.Wins) > 0 {
		fmt.Println()
		fmt.Println(theme.TitleStyle.Render("Wins"))
		fmt.Println(theme.Rule(theme.RuleStyle, theme.RuleWidth))
		for _, w := range result.Wins {
			fmt.Printf("%s  %s%s\n",
				theme.MutedStyle.Render(w.Timestamp.UTC().Format(domain.DateLayout)),
				theme.ContentStyle.Render(w.Content),
				mutedList(w.Tags))
		}
	}

	if len(result.PRs) > 0 {
		fmt.Println()
		fmt.Println(theme.PRSectionStyle.Render("Merged PRs"))
		fmt.Println(theme.Rule(theme.RuleStyle, theme.RuleWidth))
		for _, pr := range result.PRs {
			fmt.Printf("%s  %s#%d: %s%s\n",
				theme.MutedStyle.Render(pr.MergedAt.UTC().Format(domain.DateLayout)),
				theme.BoldStyle.Render(pr.Repo),
				pr.Number,
				theme.ContentStyle.Render(pr.Title),
				mutedList(pr.Labels))
			fmt.Printf("           %s/%s%s\n",
				theme.AdditionsStyle.Render(fmt.Sprintf("+%d", pr.Additions)),
				theme.DeletionsStyle.Render(fmt.Sprintf("-%d", pr.Deletions)),
				theme.MutedStyle.Render(fmt.Sprintf(", %d files  %s", pr.ChangedFiles, pr.URL)))
		}
	}

	fmt.Println()
}

func mutedList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return " " + theme.MutedStyle.Render("["+strings.Join(items, ", ")+"]")
}
