package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/CarsonBain/wins/internal/domain"
	"github.com/CarsonBain/wins/internal/logging"
	"github.com/CarsonBain/wins/internal/services"
	"github.com/CarsonBain/wins/internal/theme"
	"github.com/CarsonBain/wins/internal/ui"
)

// PRCmd manages the pull request cache
type PRCmd struct {
	Sync PRSyncCmd `cmd:"sync" help:"Fetch merged PRs from GitHub"`
}

// PRSyncCmd fetches merged pull requests into the store
type PRSyncCmd struct {
	Parallel int    `help:"Number of repositories fetched at once (1 = sequential)" default:"1"`
	Since    string `help:"Fetch PRs merged after this date (YYYY-MM-DD)"`
}

// Run executes the sync command
func (p *PRSyncCmd) Run(cli *CLI) error {
	var cutoff *time.Time
	if p.Since != "" {
		parsed, err := domain.ParseDate(p.Since)
		if err != nil {
			return err
		}
		cutoff = &parsed
	}

	container, err := cli.openContainer()
	if err != nil {
		return err
	}
	defer container.Close()

	ctx := context.Background()

	store, err := container.StoreService.Export(ctx)
	if err != nil {
		return err
	}

	params := services.SyncParams{
		Cutoff:      cutoff,
		Parallelism: p.Parallel,
		Repos:       cli.config.Repos,
		Token:       cli.config.GitHubToken,
		Username:    cli.config.GitHubUsername,
	}

	var result services.SyncResult
	syncErr := ui.RunWithSpinner(ctx, "Syncing PRs from GitHub…", func(ctx context.Context) error {
		var err error
		result, err = container.SyncService.Sync(ctx, params, store)
		return err
	})

	for _, repo := range result.Skipped {
		fmt.Fprintln(os.Stderr, theme.WarningStyle.Render(
			fmt.Sprintf("Skipping invalid repo format: %s (expected owner/repo)", repo)))
	}

	// Repositories reconciled before a failure are kept
	if result.Added > 0 || result.Updated > 0 || syncErr == nil {
		if err := container.StoreService.Save(ctx, store); err != nil {
			return err
		}
	}

	if syncErr != nil {
		logging.Logger.Error("Sync failed", "error", syncErr)
		fmt.Fprintln(os.Stderr, theme.ErrorStyle.Render("✗ Sync failed"))
		return syncErr
	}

	fmt.Printf("%s Sync complete: %s added, %s updated\n",
		theme.SuccessStyle.Render("✓"),
		theme.SuccessStyle.Render(fmt.Sprint(result.Added)),
		theme.WarningStyle.Render(fmt.Sprint(result.Updated)))
	return nil
}
