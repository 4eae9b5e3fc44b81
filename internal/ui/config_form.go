package ui

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/CarsonBain/wins/internal/config"
	"github.com/CarsonBain/wins/internal/logging"
)

// ConfigFormAnswers holds the raw values typed into the config form.
// Blank answers keep the existing value.
type ConfigFormAnswers map[config.Field]string

// configFormPrompts are the titles shown for each field, in form order
var configFormPrompts = map[config.Field]string{
	config.FieldOpenRouterAPIKey: "OpenRouter API key",
	config.FieldGitHubToken:      "GitHub personal access token",
	config.FieldGitHubUsername:   "GitHub username",
	config.FieldRepos:            "Repos to track (comma-separated, e.g. org/repo1,org/repo2)",
	config.FieldDataDir:          "Data directory",
}

// RunConfigForm asks for every config field and returns the updated config.
// cfg itself is left untouched.
func RunConfigForm(cfg *config.Config) (*config.Config, error) {
	answers := ConfigFormAnswers{}
	values := make(map[config.Field]*string, len(config.Fields))

	var fields []huh.Field
	for _, f := range config.Fields {
		v := new(string)
		values[f] = v

		input := huh.NewInput().
			Title(configFormPrompts[f]).
			Value(v)

		current := cfg.Get(f)
		if f.Secret() {
			input = input.EchoMode(huh.EchoModePassword)
			if current != "" {
				input = input.Description("Leave blank to keep the current value")
			}
		} else if current != "" {
			input = input.Placeholder(current).
				Description("Leave blank to keep " + current)
		}
		fields = append(fields, input)
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		logging.Logger.Info("Config form aborted", "error", err)
		return nil, err
	}

	for f, v := range values {
		answers[f] = *v
	}
	return ApplyConfigAnswers(cfg, answers), nil
}

// ApplyConfigAnswers returns a copy of cfg with every non-blank answer applied
func ApplyConfigAnswers(cfg *config.Config, answers ConfigFormAnswers) *config.Config {
	updated := *cfg
	updated.Repos = append(config.StringArray{}, cfg.Repos...)

	for _, f := range config.Fields {
		answer := strings.TrimSpace(answers[f])
		if answer == "" {
			continue
		}
		updated.Set(f, answer)
	}
	return &updated
}
