// Package harness provides utilities for integration testing the wins CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - WINS_CONFIG: Isolated per test (temp directory)
//   - WINS_DIR: Isolated per test (temp directory)
//   - WINS_DEBUG: Disabled to reduce noise
package harness
