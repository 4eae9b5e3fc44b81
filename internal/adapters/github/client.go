package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"

	"github.com/CarsonBain/wins/internal/domain"
	"github.com/CarsonBain/wins/internal/logging"
	"github.com/CarsonBain/wins/internal/ports"
)

const userAgent = "wins-cli"

// Client lists merged pull requests through the GitHub REST API
type Client struct {
	client *gh.Client
}

// NewClient creates a Client authenticated with token. A nil baseURL targets
// api.github.com; otherwise it must point at a REST root such as a GitHub
// Enterprise /api/v3/ endpoint.
func NewClient(httpClient *http.Client, token string, baseURL *url.URL) *Client {
	client := gh.NewClient(httpClient).WithAuthToken(token)
	client.UserAgent = userAgent
	if baseURL != nil {
		u := *baseURL
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		client.BaseURL = &u
	}
	return &Client{client: client}
}

// ListClosed returns one page of closed pull requests, most recently updated first
func (c *Client) ListClosed(ctx context.Context, repo domain.RepoRef, page, perPage int) ([]ports.ReviewRequestSummary, error) {
	opts := &gh.PullRequestListOptions{
		Direction: "desc",
		ListOptions: gh.ListOptions{
			Page:    page,
			PerPage: perPage,
		},
		Sort:  "updated",
		State: "closed",
	}

	pulls, _, err := c.client.PullRequests.List(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		logging.Logger.Debug("Listing pull requests failed", "repo", repo.String(), "page", page, "error", err)
		return nil, classify(err)
	}

	items := make([]ports.ReviewRequestSummary, 0, len(pulls))
	for _, pr := range pulls {
		items = append(items, toSummary(pr))
	}
	return items, nil
}

// GetStats returns the change statistics of one pull request
func (c *Client) GetStats(ctx context.Context, repo domain.RepoRef, number int) (ports.ReviewRequestStats, error) {
	pr, _, err := c.client.PullRequests.Get(ctx, repo.Owner, repo.Name, number)
	if err != nil {
		logging.Logger.Debug("Fetching pull request failed", "repo", repo.String(), "number", number, "error", err)
		return ports.ReviewRequestStats{}, classify(err)
	}

	return ports.ReviewRequestStats{
		Additions:    pr.GetAdditions(),
		ChangedFiles: pr.GetChangedFiles(),
		Deletions:    pr.GetDeletions(),
	}, nil
}

func toSummary(pr *gh.PullRequest) ports.ReviewRequestSummary {
	labels := make([]string, 0, len(pr.Labels))
	for _, l := range pr.Labels {
		labels = append(labels, l.GetName())
	}

	item := ports.ReviewRequestSummary{
		Author:    pr.GetUser().GetLogin(),
		Body:      pr.GetBody(),
		ID:        pr.GetID(),
		Labels:    labels,
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		UpdatedAt: pr.GetUpdatedAt().Time,
		URL:       pr.GetHTMLURL(),
	}
	if pr.MergedAt != nil {
		mergedAt := pr.MergedAt.Time
		item.MergedAt = &mergedAt
	}
	return item
}

// classify wraps status-coded failures with the domain signals. Rate limit
// responses are distinct error types in go-github and pass through untouched.
func classify(err error) error {
	var errResp *gh.ErrorResponse
	if !errors.As(err, &errResp) || errResp.Response == nil {
		return err
	}

	switch errResp.Response.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", domain.ErrRemoteUnauthorized, err)
	case http.StatusForbidden, http.StatusNotFound:
		return fmt.Errorf("%w: %w", domain.ErrRemoteNotFound, err)
	default:
		return err
	}
}
