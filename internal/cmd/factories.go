package cmd

import (
	"fmt"
	"net/url"

	adaptergithub "github.com/CarsonBain/wins/internal/adapters/github"
	adapteropenrouter "github.com/CarsonBain/wins/internal/adapters/openrouter"
	adapterstorage "github.com/CarsonBain/wins/internal/adapters/storage"
	"github.com/CarsonBain/wins/internal/config"
	"github.com/CarsonBain/wins/internal/ports"
	"github.com/CarsonBain/wins/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	ReportService *services.ReportService
	StoreService  *services.StoreService
	SyncService   *services.SyncService
	WinService    *services.WinService

	// Internal - for cleanup only
	storeRepo ports.StoreRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(cfg *config.Config) (*Container, error) {
	githubURL, err := parseGitHubAPIURL(config.GitHubAPIURL())
	if err != nil {
		return nil, err
	}
	openRouterURL := config.OpenRouterURL()

	storeRepo, err := adapterstorage.NewSQLiteRepositoryForDir(config.ResolveDataDir(cfg))
	if err != nil {
		return nil, err
	}

	newSource := func(token string) ports.ReviewRequestSource {
		return adaptergithub.NewClient(nil, token, githubURL)
	}
	newCompleter := func(apiKey string) ports.Completer {
		return adapteropenrouter.NewClient(apiKey, openRouterURL)
	}

	return &Container{
		ReportService: services.NewReportService(storeRepo, storeRepo, newCompleter),
		StoreService:  services.NewStoreService(storeRepo),
		SyncService:   services.NewSyncService(newSource, nil),
		WinService:    services.NewWinService(storeRepo, storeRepo, storeRepo, nil),
		storeRepo:     storeRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.storeRepo != nil {
		return c.storeRepo.Close()
	}
	return nil
}

// parseGitHubAPIURL returns nil for the public API
func parseGitHubAPIURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid WINS_GITHUB_API_URL %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid WINS_GITHUB_API_URL %q: scheme and host are required", raw)
	}
	return u, nil
}
