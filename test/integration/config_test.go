package integration_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarsonBain/wins/test/integration/harness"
)

func TestConfigSet(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "config", "set", "githubToken", "ghp_secret")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Set githubToken = ***")
	harness.AssertStdoutNotContains(t, result, "ghp_secret")

	result = harness.RunCommand(t, env, "config", "set", "repos", "acme/api, acme/web")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Set repos = acme/api, acme/web")

	result = harness.RunCommand(t, env, "config", "set", "githubUsername", "octocat")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Set githubUsername = octocat")

	saved := env.ReadConfig()
	assert.Equal(t, "ghp_secret", saved["githubToken"])
	assert.Equal(t, "octocat", saved["githubUsername"])
	assert.Equal(t, []any{"acme/api", "acme/web"}, saved["repos"])
}

func TestConfigSet_UnknownKey(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "config", "set", "githubtoken", "x")

	harness.AssertCommandError(t, result,
		"unknown config key: githubtoken",
		"Valid keys: openrouterApiKey, githubToken, githubUsername, repos, dataDir")
}

func TestConfigGet(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteConfig(map[string]any{
		"githubToken":      "ghp_secret",
		"githubUsername":   "octocat",
		"openrouterApiKey": "sk-or-secret",
		"repos":            "acme/api,acme/web",
	})

	t.Run("single key", func(t *testing.T) {
		result := harness.RunCommand(t, env, "config", "get", "githubUsername")
		harness.AssertSuccess(t, result)
		assert.Equal(t, "octocat", strings.TrimSpace(result.Stdout))
	})

	t.Run("repos as comma-separated string", func(t *testing.T) {
		result := harness.RunCommand(t, env, "config", "get", "repos")
		harness.AssertSuccess(t, result)
		assert.Equal(t, "acme/api,acme/web", strings.TrimSpace(result.Stdout))
	})

	t.Run("whole config masks secrets", func(t *testing.T) {
		result := harness.RunCommand(t, env, "config", "get")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Config path: "+env.ConfigPath)

		_, body, found := strings.Cut(result.Stdout, "\n")
		require.True(t, found)
		var shown map[string]any
		require.NoError(t, json.Unmarshal([]byte(body), &shown))
		assert.Equal(t, "***", shown["githubToken"])
		assert.Equal(t, "***", shown["openrouterApiKey"])
		assert.Equal(t, "octocat", shown["githubUsername"])
		harness.AssertStdoutNotContains(t, result, "ghp_secret")
	})

	t.Run("unknown key", func(t *testing.T) {
		result := harness.RunCommand(t, env, "config", "get", "password")
		harness.AssertCommandError(t, result, "unknown config key")
	})
}

func TestConfigMeta(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name: "table format (default)",
			args: []string{"config", "meta"},
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Config file: "+env.ConfigPath)
				harness.AssertStdoutContains(t, result, "Data directory: "+env.DataDir)
				harness.AssertStdoutContains(t, result, "Example config.json:")
				harness.AssertStdoutContains(t, result, `["acme/app","acme/lib"]`)
			},
		},
		{
			name: "json format",
			args: []string{"config", "meta", "--format", "json"},
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertJSONContains(t, result, "config_file", env.ConfigPath)
				harness.AssertJSONContains(t, result, "data_dir", env.DataDir)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			tt.validate(t, env, result)
		})
	}
}
