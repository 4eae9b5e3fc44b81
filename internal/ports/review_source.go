package ports

import (
	"context"
	"time"

	"github.com/CarsonBain/wins/internal/domain"
)

// ReviewRequestSummary is one item of a closed pull request listing
type ReviewRequestSummary struct {
	Author    string
	Body      string
	ID        int64
	Labels    []string
	MergedAt  *time.Time // nil when closed without merging
	Number    int
	Title     string
	UpdatedAt time.Time
	URL       string
}

// ReviewRequestStats holds the change statistics of a single pull request
type ReviewRequestStats struct {
	Additions    int
	ChangedFiles int
	Deletions    int
}

// ReviewRequestSource lists merged pull requests from a hosted source-control service.
// Implementations wrap domain.ErrRemoteNotFound for not found/forbidden responses and
// domain.ErrRemoteUnauthorized for rejected credentials; any other error is returned as is.
type ReviewRequestSource interface {
	// ListClosed returns one page of closed pull requests, most recently updated first
	ListClosed(ctx context.Context, repo domain.RepoRef, page, perPage int) ([]ReviewRequestSummary, error)

	// GetStats returns additions, deletions and changed files for one pull request
	GetStats(ctx context.Context, repo domain.RepoRef, number int) (ReviewRequestStats, error)
}
