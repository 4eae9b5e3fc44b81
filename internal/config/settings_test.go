package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarsonBain/wins/internal/domain"
)

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NotNil(t, cfg.Repos)
}

func TestLoadFrom_ReposFormats(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected StringArray
	}{
		{"array", `{"repos": ["acme/app", "acme/lib"]}`, StringArray{"acme/app", "acme/lib"}},
		{"comma separated", `{"repos": "acme/app, acme/lib,,"}`, StringArray{"acme/app", "acme/lib"}},
		{"missing", `{"githubUsername": "octocat"}`, StringArray{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			cfg, err := LoadFrom(path)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Repos)
		})
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0600))

	_, err := LoadFrom(path)

	assert.ErrorContains(t, err, "invalid config.json")
}

func TestSaveTo_RoundTripAndPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := &Config{
		DataDir:          "~/wins-data",
		GitHubToken:      "ghp_secret",
		GitHubUsername:   "octocat",
		OpenRouterAPIKey: "sk-or-secret",
		Repos:            StringArray{"acme/app"},
	}

	require.NoError(t, SaveTo(path, cfg))
	loaded, err := LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestSave_UsesEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	t.Setenv("WINS_CONFIG", path)

	require.NoError(t, Save(&Config{GitHubUsername: "octocat", Repos: StringArray{}}))
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "octocat", cfg.GitHubUsername)
	assert.Equal(t, path, GetConfigPath())
}

func TestResolveDataDir(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Run("env wins", func(t *testing.T) {
		t.Setenv("WINS_DIR", "/tmp/wins-env")
		assert.Equal(t, "/tmp/wins-env", ResolveDataDir(&Config{DataDir: "/tmp/other"}))
	})

	t.Run("config next", func(t *testing.T) {
		t.Setenv("WINS_DIR", "")
		assert.Equal(t, filepath.Join(home, "data"), ResolveDataDir(&Config{DataDir: "~/data"}))
	})

	t.Run("default last", func(t *testing.T) {
		t.Setenv("WINS_DIR", "")
		assert.Equal(t, filepath.Join(home, ".wins"), ResolveDataDir(&Config{}))
		assert.Equal(t, filepath.Join(home, ".wins"), ResolveDataDir(nil))
	})
}

func TestParseField(t *testing.T) {
	for _, f := range Fields {
		got, err := ParseField(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseField("apiKey")
	assert.True(t, errors.Is(err, domain.ErrUnknownConfigKey))
	assert.Contains(t, err.Error(), "Valid keys: openrouterApiKey, githubToken, githubUsername, repos, dataDir")
}

func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	cfg.Set(FieldRepos, " acme/app ,acme/lib,")
	cfg.Set(FieldGitHubToken, "ghp_x")
	cfg.Set(FieldGitHubUsername, "octocat")
	cfg.Set(FieldOpenRouterAPIKey, "sk-or")
	cfg.Set(FieldDataDir, "/data")

	assert.Equal(t, StringArray{"acme/app", "acme/lib"}, cfg.Repos)
	assert.Equal(t, "acme/app,acme/lib", cfg.Get(FieldRepos))
	assert.Equal(t, "ghp_x", cfg.Get(FieldGitHubToken))
	assert.Equal(t, "octocat", cfg.Get(FieldGitHubUsername))
	assert.Equal(t, "sk-or", cfg.Get(FieldOpenRouterAPIKey))
	assert.Equal(t, "/data", cfg.Get(FieldDataDir))
}

func TestConfig_Masked(t *testing.T) {
	cfg := &Config{GitHubToken: "ghp_x", GitHubUsername: "octocat", Repos: StringArray{"a/b"}}

	masked := cfg.Masked()

	assert.Equal(t, "***", masked.GitHubToken)
	assert.Equal(t, "", masked.OpenRouterAPIKey, "unset secrets stay empty")
	assert.Equal(t, "octocat", masked.GitHubUsername)
	assert.Equal(t, "ghp_x", cfg.GitHubToken, "original untouched")

	assert.Equal(t, "***", FieldOpenRouterAPIKey.DisplayValue("sk"))
	assert.Equal(t, "acme/app", FieldRepos.DisplayValue("acme/app"))
}

func TestGetConfigExample_CoversEveryField(t *testing.T) {
	example := GetConfigExample()

	require.Len(t, example, len(Fields))
	for _, f := range Fields {
		assert.Contains(t, example, string(f))
	}
	assert.Equal(t, []string{"acme/app", "acme/lib"}, example["repos"])
}
