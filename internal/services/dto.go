package services

import (
	"time"

	"github.com/CarsonBain/wins/internal/domain"
	"github.com/CarsonBain/wins/internal/ports"
)

// SyncParams contains the configuration a sync run needs
type SyncParams struct {
	Cutoff      *time.Time // explicit lower bound; overrides the store watermark
	Parallelism int        // repositories fetched at once; 0 or 1 is sequential
	Repos       []string   // owner/name, processed in this order
	Token       string
	Username    string
}

// SyncResult summarises a sync run
type SyncResult struct {
	Added   int
	Skipped []string // malformed repository identifiers
	Updated int
}

// SourceFactory creates a review-request source authenticated with token
type SourceFactory func(token string) ports.ReviewRequestSource

// CompleterFactory creates a language model client for apiKey
type CompleterFactory func(apiKey string) ports.Completer

// LogParams describes a win to record
type LogParams struct {
	Date    *time.Time // backdates the entry; nil means now
	Message string
	Tags    []string
}

// ListParams selects wins and, optionally, cached pull requests
type ListParams struct {
	IncludePRs bool
	Range      domain.DateRange
}

// ListResult holds a filtered listing
type ListResult struct {
	PRs  []domain.PREntry
	Wins []domain.WinEntry
}

// Empty reports whether nothing matched
func (r ListResult) Empty() bool {
	return len(r.Wins) == 0 && len(r.PRs) == 0
}

// GenerateParams contains what a report generation needs
type GenerateParams struct {
	APIKey string
	Kind   ReportKind
	Range  domain.DateRange
}

// ImportResult summarises a replaced store
type ImportResult struct {
	DuplicatePRs int // entries dropped because an earlier one had the same ID
	PRs          int
	Wins         int
}
