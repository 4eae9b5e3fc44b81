package integration_test

import (
	"testing"

	"github.com/CarsonBain/wins/test/integration/harness"
)

func TestVersionFlag(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "wins "+harness.TestVersion)
}

func TestUnknownCommand(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "brag")

	harness.AssertFailure(t, result)
}
