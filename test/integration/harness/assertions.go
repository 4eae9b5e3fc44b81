package harness

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ErrorPrefix starts the message main prints before exiting with status 1
const ErrorPrefix = "Error: "

// describe renders a result for failure messages
func describe(result CommandResult) string {
	return fmt.Sprintf("exit=%d\n--- stdout ---\n%s\n--- stderr ---\n%s",
		result.ExitCode, result.Stdout, result.Stderr)
}

// AssertExitCode verifies the command exited with code.
func AssertExitCode(tb testing.TB, result CommandResult, code int) {
	tb.Helper()
	assert.Equal(tb, code, result.ExitCode, describe(result))
}

// AssertSuccess verifies the command exited 0 without printing an error.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	AssertExitCode(tb, result, 0)
	assert.NotContains(tb, result.Stderr, ErrorPrefix, describe(result))
}

// AssertFailure verifies the command exited non-zero.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotEqual(tb, 0, result.ExitCode, describe(result))
}

// AssertCommandError verifies the error exit path: status 1, and stderr
// carrying the error prefix and every fragment of the message.
func AssertCommandError(tb testing.TB, result CommandResult, fragments ...string) {
	tb.Helper()
	AssertExitCode(tb, result, 1)
	assert.Contains(tb, result.Stderr, ErrorPrefix, describe(result))
	for _, f := range fragments {
		assert.Contains(tb, result.Stderr, f, describe(result))
	}
}

// AssertWarning verifies a swallowed condition: the command still succeeds
// and the warning goes to stderr, never to stdout.
func AssertWarning(tb testing.TB, result CommandResult, warning string) {
	tb.Helper()
	AssertSuccess(tb, result)
	assert.Contains(tb, result.Stderr, warning, describe(result))
	assert.NotContains(tb, result.Stdout, warning, "warnings belong on stderr")
}

// AssertStdoutContains verifies stdout holds every fragment.
func AssertStdoutContains(tb testing.TB, result CommandResult, fragments ...string) {
	tb.Helper()
	for _, f := range fragments {
		assert.Contains(tb, result.Stdout, f, describe(result))
	}
}

// AssertStdoutNotContains verifies stdout holds none of the fragments.
func AssertStdoutNotContains(tb testing.TB, result CommandResult, fragments ...string) {
	tb.Helper()
	for _, f := range fragments {
		assert.NotContains(tb, result.Stdout, f, describe(result))
	}
}

// AssertStderrContains verifies stderr holds every fragment.
func AssertStderrContains(tb testing.TB, result CommandResult, fragments ...string) {
	tb.Helper()
	for _, f := range fragments {
		assert.Contains(tb, result.Stderr, f, describe(result))
	}
}

// AssertValidJSON decodes stdout into target.
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target), describe(result))
}

// AssertJSONContains verifies a top-level key of the JSON on stdout.
func AssertJSONContains(tb testing.TB, result CommandResult, key string, expected any) {
	tb.Helper()
	var data map[string]any
	AssertValidJSON(tb, result, &data)
	assert.Equal(tb, expected, data[key], "JSON key %q", key)
}
