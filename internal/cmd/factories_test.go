package cmd

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGitHubAPIURL(t *testing.T) {
	u, err := parseGitHubAPIURL("")
	require.NoError(t, err)
	assert.Nil(t, u, "empty override targets api.github.com")

	u, err = parseGitHubAPIURL("https://ghe.example.com/api/v3")
	require.NoError(t, err)
	assert.Equal(t, "ghe.example.com", u.Host)
	assert.Equal(t, "/api/v3", u.Path)

	for _, bad := range []string{"ghe.example.com", "/api/v3"} {
		_, err := parseGitHubAPIURL(bad)
		assert.ErrorContains(t, err, "scheme and host are required", bad)
	}
}

func TestParseGitHubAPIURL_KeepsParseError(t *testing.T) {
	_, err := parseGitHubAPIURL("://broken")

	var urlErr *url.Error
	require.True(t, errors.As(err, &urlErr), "got %v", err)
	assert.Contains(t, err.Error(), "WINS_GITHUB_API_URL")
}

func TestNewContainer_OpensStoreInDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("WINS_DIR", dir)
	t.Setenv("WINS_GITHUB_API_URL", "")

	container, err := NewContainer(nil)
	require.NoError(t, err)
	defer container.Close()

	assert.NotNil(t, container.WinService)
	assert.NotNil(t, container.SyncService)
	assert.NotNil(t, container.ReportService)
	assert.NotNil(t, container.StoreService)
	assert.FileExists(t, dir+"/wins.db")
}
