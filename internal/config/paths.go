package config

import (
	"os"
	"path/filepath"
)

// GetConfigPath returns WINS_CONFIG or ~/.config/wins/config.json
func GetConfigPath() string {
	if p := os.Getenv("WINS_CONFIG"); p != "" {
		return ExpandPath(p)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "wins", "config.json")
	}
	return filepath.Join(homeDir, ".config", "wins", "config.json")
}

// DefaultDataDir returns ~/.wins
func DefaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".wins"
	}
	return filepath.Join(homeDir, ".wins")
}

// ResolveDataDir returns WINS_DIR, then cfg.DataDir, then DefaultDataDir
func ResolveDataDir(cfg *Config) string {
	if dir := os.Getenv("WINS_DIR"); dir != "" {
		return ExpandPath(dir)
	}
	if cfg != nil && cfg.DataDir != "" {
		return ExpandPath(cfg.DataDir)
	}
	return DefaultDataDir()
}

// GitHubAPIURL returns the WINS_GITHUB_API_URL override, or "" for api.github.com
func GitHubAPIURL() string {
	return os.Getenv("WINS_GITHUB_API_URL")
}

// OpenRouterURL returns the WINS_OPENROUTER_URL override, or "" for the public endpoint
func OpenRouterURL() string {
	return os.Getenv("WINS_OPENROUTER_URL")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
