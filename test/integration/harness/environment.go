package harness

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own config
// file and data directory.
type TestEnvironment struct {
	ConfigPath string
	DataDir    string
	extraEnv   map[string]string
	tb         testing.TB
}

// NewTestEnvironment creates an isolated test environment under a temp directory.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	root := tb.TempDir()

	return &TestEnvironment{
		ConfigPath: filepath.Join(root, "config", "config.json"),
		DataDir:    filepath.Join(root, "data"),
		extraEnv:   make(map[string]string),
		tb:         tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out WINS_* variables and sets:
//   - WINS_CONFIG to the temp config file
//   - WINS_DIR to the temp data directory
//   - WINS_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "WINS_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"WINS_CONFIG="+e.ConfigPath,
		"WINS_DIR="+e.DataDir,
		"WINS_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.DataDir, "wins.db")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// WriteConfig writes values as the config file.
func (e *TestEnvironment) WriteConfig(values map[string]any) {
	e.tb.Helper()

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		e.tb.Fatalf("Failed to marshal config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(e.ConfigPath), 0700); err != nil {
		e.tb.Fatalf("Failed to create config directory: %v", err)
	}
	if err := os.WriteFile(e.ConfigPath, data, 0600); err != nil {
		e.tb.Fatalf("Failed to write config: %v", err)
	}
}

// ReadConfig returns the config file as a generic map.
func (e *TestEnvironment) ReadConfig() map[string]any {
	e.tb.Helper()

	data, err := os.ReadFile(e.ConfigPath)
	if err != nil {
		e.tb.Fatalf("Failed to read config: %v", err)
	}
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		e.tb.Fatalf("Failed to parse config: %v", err)
	}
	return values
}
