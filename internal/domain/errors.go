package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyWin         = errors.New("win message is empty")
	ErrInvalidDate      = errors.New("invalid date")
	ErrMissingAPIKey    = errors.New("OpenRouter API key not configured. Run: wins config set openrouterApiKey <key>")
	ErrUnknownConfigKey = errors.New("unknown config key")
)

// Signals raised by a review-request source. Adapters wrap them so callers can
// classify remote failures with errors.Is.
var (
	ErrRemoteNotFound     = errors.New("remote resource not found or forbidden")
	ErrRemoteUnauthorized = errors.New("remote rejected credentials")
)

// tokenSettingsURL is where personal access tokens are created and authorized
const tokenSettingsURL = "https://github.com/settings/tokens"

// ConfigurationError reports a configuration precondition that is not met
type ConfigurationError struct {
	Hint   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Hint == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s\n  %s", e.Reason, e.Hint)
}

// CredentialError reports that the remote rejected the configured token
type CredentialError struct {
	Err error
}

func (e *CredentialError) Error() string {
	return "GitHub token is invalid or expired. Generate a new one at:\n" +
		"  " + tokenSettingsURL + "\n" +
		"Then run: wins config set githubToken <token>"
}

func (e *CredentialError) Unwrap() error { return e.Err }

// RemoteAccessError reports that the remote denied access to one repository
type RemoteAccessError struct {
	Err  error
	Repo string
}

func (e *RemoteAccessError) Error() string {
	return fmt.Sprintf("Repo not found or token lacks access: %s\n", e.Repo) +
		"  • Check the repo name is correct (case-sensitive)\n" +
		"  • Ensure your token has the 'repo' scope (not just 'public_repo')\n" +
		"  • If the organization uses SAML SSO, authorize your token at:\n" +
		"    " + tokenSettingsURL
}

func (e *RemoteAccessError) Unwrap() error { return e.Err }
