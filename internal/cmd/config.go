package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/CarsonBain/wins/internal/config"
	"github.com/CarsonBain/wins/internal/logging"
	"github.com/CarsonBain/wins/internal/theme"
	"github.com/CarsonBain/wins/internal/ui"
)

// ConfigCmd manages the config file
type ConfigCmd struct {
	Get  ConfigGetCmd  `cmd:"get" help:"Print config (or a single value)"`
	Init ConfigInitCmd `cmd:"init" help:"Interactive setup"`
	Meta ConfigMetaCmd `cmd:"meta" help:"Show config file location and available keys"`
	Set  ConfigSetCmd  `cmd:"set" help:"Update a single config value"`
}

// ConfigInitCmd walks through every key interactively
type ConfigInitCmd struct{}

// Run executes the init command
func (c *ConfigInitCmd) Run(cli *CLI) error {
	fmt.Println(theme.TitleStyle.Render("wins config init"))
	fmt.Println(theme.MutedStyle.Render("Press Enter to keep existing value. Leave blank to skip."))
	fmt.Println()

	updated, err := ui.RunConfigForm(cli.config)
	if err != nil {
		return err
	}
	if err := config.Save(updated); err != nil {
		return err
	}
	logging.Logger.Info("Config saved", "path", config.GetConfigPath())

	fmt.Println(theme.SuccessStyle.Render("✓ Config saved to " + config.GetConfigPath()))
	return nil
}

// ConfigSetCmd sets one key
type ConfigSetCmd struct {
	Key   string `arg:"" help:"Config key (openrouterApiKey, githubToken, githubUsername, repos, dataDir)"`
	Value string `arg:"" help:"New value; repos takes a comma-separated list"`
}

// Run executes the set command
func (c *ConfigSetCmd) Run(cli *CLI) error {
	field, err := config.ParseField(c.Key)
	if err != nil {
		return err
	}

	cli.config.Set(field, c.Value)
	if err := config.Save(cli.config); err != nil {
		return err
	}
	logging.Logger.Info("Config key updated", "key", field)

	fmt.Println(theme.SuccessStyle.Render(fmt.Sprintf("✓ Set %s = %s", field, field.DisplayValue(c.Value))))
	return nil
}

// ConfigGetCmd prints the config or one key
type ConfigGetCmd struct {
	Key string `arg:"" optional:"" help:"Config key to print"`
}

// Run executes the get command
func (c *ConfigGetCmd) Run(cli *CLI) error {
	if c.Key != "" {
		field, err := config.ParseField(c.Key)
		if err != nil {
			return err
		}
		fmt.Println(cli.config.Get(field))
		return nil
	}

	data, err := json.MarshalIndent(cli.config.Masked(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(theme.BoldStyle.Render("Config path:"), config.GetConfigPath())
	fmt.Println(string(data))
	return nil
}

// ConfigMetaCmd displays config metadata
type ConfigMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (c *ConfigMetaCmd) Run(cli *CLI) error {
	configFile := config.GetConfigPath()
	example := config.GetConfigExample()

	if c.Format == "json" {
		output := map[string]any{
			"config_file": configFile,
			"data_dir":    config.ResolveDataDir(cli.config),
			"format":      example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Config file: %s\n", configFile)
	fmt.Printf("Data directory: %s\n\n", config.ResolveDataDir(cli.config))
	fmt.Println("Example config.json:")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, field := range config.Fields {
		var valueStr string
		switch v := example[string(field)].(type) {
		case []string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", field, valueStr)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Run 'wins config init' or 'wins config set <key> <value>' to edit it.")
	fmt.Println("Environment: WINS_CONFIG overrides the file location, WINS_DIR the data directory.")
	return nil
}
