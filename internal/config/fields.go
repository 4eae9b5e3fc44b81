package config

import (
	"fmt"
	"strings"

	"github.com/CarsonBain/wins/internal/domain"
)

// Field names a settable configuration key
type Field string

const (
	FieldOpenRouterAPIKey Field = "openrouterApiKey"
	FieldGitHubToken      Field = "githubToken"
	FieldGitHubUsername   Field = "githubUsername"
	FieldRepos            Field = "repos"
	FieldDataDir          Field = "dataDir"
)

// Fields lists every key in display order
var Fields = []Field{
	FieldOpenRouterAPIKey,
	FieldGitHubToken,
	FieldGitHubUsername,
	FieldRepos,
	FieldDataDir,
}

const secretMask = "***"

// ParseField rejects names outside Fields
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %s. Valid keys: %s", domain.ErrUnknownConfigKey, name, fieldList())
}

func fieldList() string {
	names := make([]string, len(Fields))
	for i, f := range Fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Secret reports whether values of the field are masked on output
func (f Field) Secret() bool {
	return f == FieldOpenRouterAPIKey || f == FieldGitHubToken
}

// Get returns the field's value; repos are comma-joined
func (c *Config) Get(f Field) string {
	switch f {
	case FieldOpenRouterAPIKey:
		return c.OpenRouterAPIKey
	case FieldGitHubToken:
		return c.GitHubToken
	case FieldGitHubUsername:
		return c.GitHubUsername
	case FieldRepos:
		return strings.Join(c.Repos, ",")
	case FieldDataDir:
		return c.DataDir
	}
	return ""
}

// Set assigns value to the field; repos are parsed as a comma-separated list
func (c *Config) Set(f Field, value string) {
	switch f {
	case FieldOpenRouterAPIKey:
		c.OpenRouterAPIKey = value
	case FieldGitHubToken:
		c.GitHubToken = value
	case FieldGitHubUsername:
		c.GitHubUsername = value
	case FieldRepos:
		c.Repos = parseCommaSeparated(value)
	case FieldDataDir:
		c.DataDir = value
	}
}

// DisplayValue returns value, or a mask for secret fields
func (f Field) DisplayValue(value string) string {
	if f.Secret() && value != "" {
		return secretMask
	}
	return value
}

// Masked returns a copy with secrets replaced by a mask
func (c *Config) Masked() *Config {
	masked := *c
	masked.Repos = append(StringArray{}, c.Repos...)
	masked.OpenRouterAPIKey = FieldOpenRouterAPIKey.DisplayValue(c.OpenRouterAPIKey)
	masked.GitHubToken = FieldGitHubToken.DisplayValue(c.GitHubToken)
	return &masked
}
