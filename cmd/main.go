package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/CarsonBain/wins/internal/cmd"
	"github.com/CarsonBain/wins/internal/theme"
)

// Build information injected at build time via ldflags
// Example: -ldflags="-X main.Version=v1.0.0 -X main.Commit=abc123 ..."
var (
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
	Version   = "dev"
)

// Tagline is the application's tagline used in help text
const Tagline = "Track your engineering wins and get AI-powered summaries of your work"

// versionInfo returns formatted version information for CLI display
func versionInfo() string {
	return fmt.Sprintf("wins %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}

func main() {
	// Config is loaded in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("wins"),
		kong.Description(Tagline),
		kong.Vars{
			"version": versionInfo(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
