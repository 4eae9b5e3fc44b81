package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/CarsonBain/wins/internal/adapters/archive"
	"github.com/CarsonBain/wins/internal/theme"
)

// ExportCmd writes the whole store to a file or stdout
type ExportCmd struct {
	Format string `help:"Output format: json or yaml (default: from --output extension, else json)"`
	Output string `help:"File to write (default: stdout)" short:"o" type:"path"`
}

// Run executes the export command
func (e *ExportCmd) Run(cli *CLI) error {
	format := archive.FormatJSON
	if e.Output != "" {
		format = archive.DetectFormat(e.Output)
	}
	if e.Format != "" {
		parsed, err := archive.ParseFormat(e.Format)
		if err != nil {
			return err
		}
		format = parsed
	}

	container, err := cli.openContainer()
	if err != nil {
		return err
	}
	defer container.Close()

	store, err := container.StoreService.Export(context.Background())
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if e.Output != "" {
		f, err := os.Create(e.Output)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := archive.Encode(w, store, format); err != nil {
		return err
	}

	if e.Output != "" {
		fmt.Fprintf(os.Stderr, "%s Exported %d wins and %d PRs to %s\n",
			theme.SuccessStyle.Render("✓"), len(store.Wins), len(store.PRs), e.Output)
	}
	return nil
}
