package cmd

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/CarsonBain/wins/internal/config"
	"github.com/CarsonBain/wins/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Config  ConfigCmd  `cmd:"config" help:"Manage wins configuration"`
	Export  ExportCmd  `cmd:"export" help:"Write all wins and PRs to a JSON or YAML file"`
	Import  ImportCmd  `cmd:"import" help:"Replace all wins and PRs with the contents of an export"`
	List    ListCmd    `cmd:"list" help:"Print wins (and optionally PRs)"`
	Log     LogCmd     `cmd:"log" help:"Append a timestamped win to the store"`
	PR      PRCmd      `cmd:"pr" help:"Manage GitHub PR sync"`
	Review  ReviewCmd  `cmd:"review" help:"AI: full performance review narrative"`
	Summary SummaryCmd `cmd:"summary" help:"AI-generated 3-5 sentence accomplishment summary"`
	Themes  ThemesCmd  `cmd:"themes" help:"AI: recurring themes and focus areas"`

	// Internal fields (not flags)
	config *config.Config `kong:"-"`
}

// AfterApply initializes logging and loads the config file after CLI parsing
func (c *CLI) AfterApply() error {
	if _, err := logging.Setup(logging.Options{
		Debug:       c.Debug,
		File:        c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
	}); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.config = cfg

	logging.Logger.Debug("Config loaded",
		"path", config.GetConfigPath(),
		"repos", len(cfg.Repos),
		"dataDir", config.ResolveDataDir(cfg))

	return nil
}

// openContainer opens the store and wires the services. Callers must Close it.
func (c *CLI) openContainer() (*Container, error) {
	container, err := NewContainer(c.config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return container, nil
}
