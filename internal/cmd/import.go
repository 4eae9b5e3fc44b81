package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/CarsonBain/wins/internal/adapters/archive"
	"github.com/CarsonBain/wins/internal/theme"
)

// ImportCmd replaces the store with an export
type ImportCmd struct {
	File   string `arg:"" help:"Export file (JSON or YAML; a store.json from earlier releases also works)" type:"existingfile"`
	Format string `help:"Input format: json or yaml (default: from file extension)"`
}

// Run executes the import command
func (i *ImportCmd) Run(cli *CLI) error {
	format := archive.DetectFormat(i.File)
	if i.Format != "" {
		parsed, err := archive.ParseFormat(i.Format)
		if err != nil {
			return err
		}
		format = parsed
	}

	f, err := os.Open(i.File)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	snapshot, err := archive.Decode(f, format)
	if err != nil {
		return err
	}

	container, err := cli.openContainer()
	if err != nil {
		return err
	}
	defer container.Close()

	result, err := container.StoreService.Import(context.Background(), snapshot)
	if err != nil {
		return err
	}

	fmt.Printf("%s Imported %d wins and %d PRs\n", theme.SuccessStyle.Render("✓"), result.Wins, result.PRs)
	if result.DuplicatePRs > 0 {
		fmt.Println(theme.WarningStyle.Render(fmt.Sprintf("  %d duplicate PRs merged by ID", result.DuplicatePRs)))
	}
	return nil
}
