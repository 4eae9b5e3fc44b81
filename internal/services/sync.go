package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/CarsonBain/wins/internal/domain"
	"github.com/CarsonBain/wins/internal/logging"
	"github.com/CarsonBain/wins/internal/ports"
)

// PageSize is the number of pull requests requested per listing page
const PageSize = 50

// SyncService pulls merged pull requests into the store
type SyncService struct {
	newSource SourceFactory
	now       func() time.Time
}

// NewSyncService creates a new SyncService. A nil now uses time.Now.
func NewSyncService(newSource SourceFactory, now func() time.Time) *SyncService {
	if now == nil {
		now = time.Now
	}
	return &SyncService{
		newSource: newSource,
		now:       now,
	}
}

// Sync fetches merged pull requests authored by params.Username from every tracked
// repository and reconciles them into store.PRs. The store is mutated in place: on
// failure it still holds every repository reconciled before the failing one.
//
// Listings are ordered by last update, not merge time, so stopping at the first item
// merged before the cutoff is an approximation. A pull request merged long ago but
// updated recently can end a repository's scan early.
func (s *SyncService) Sync(ctx context.Context, params SyncParams, store *domain.Store) (SyncResult, error) {
	var result SyncResult

	if params.Token == "" {
		return result, &domain.ConfigurationError{
			Reason: "missing credential",
			Hint:   "GitHub token not configured. Run: wins config set githubToken <token>",
		}
	}
	if params.Username == "" {
		return result, &domain.ConfigurationError{
			Reason: "missing username",
			Hint:   "GitHub username not configured. Run: wins config set githubUsername <username>",
		}
	}
	if len(params.Repos) == 0 {
		return result, &domain.ConfigurationError{
			Reason: "no repositories configured",
			Hint:   "Run: wins config set repos org/repo,org/repo2",
		}
	}

	cutoff := params.Cutoff
	if cutoff == nil {
		cutoff = store.LastPRSync
	}

	var repos []domain.RepoRef
	for _, raw := range params.Repos {
		repo, err := domain.ParseRepoRef(raw)
		if err != nil {
			logging.Logger.Warn("Skipping invalid repo format", "repo", raw)
			result.Skipped = append(result.Skipped, raw)
			continue
		}
		repos = append(repos, repo)
	}

	logging.Logger.Info("Starting PR sync",
		"repos", len(repos),
		"skipped", len(result.Skipped),
		"cutoff", cutoff,
		"parallelism", params.Parallelism)

	source := s.newSource(params.Token)

	var err error
	if params.Parallelism > 1 {
		err = s.syncConcurrently(ctx, source, repos, params, cutoff, store, &result)
	} else {
		err = s.syncSequentially(ctx, source, repos, params, cutoff, store, &result)
	}

	// Partial results are sorted too, callers may persist them
	sort.SliceStable(store.PRs, func(i, j int) bool {
		return store.PRs[i].MergedAt.After(store.PRs[j].MergedAt)
	})

	if err != nil {
		logging.Logger.Error("PR sync failed", "error", err, "added", result.Added, "updated", result.Updated)
		return result, err
	}

	store.AdvanceWatermark(s.now())

	logging.Logger.Info("PR sync complete", "added", result.Added, "updated", result.Updated)
	return result, nil
}

func (s *SyncService) syncSequentially(
	ctx context.Context,
	source ports.ReviewRequestSource,
	repos []domain.RepoRef,
	params SyncParams,
	cutoff *time.Time,
	store *domain.Store,
	result *SyncResult,
) error {
	for _, repo := range repos {
		entries, err := fetchRepo(ctx, source, repo, params.Username, cutoff)
		if err != nil {
			return err
		}
		mergeEntries(store, entries, result)
	}
	return nil
}

// syncConcurrently fetches repositories in parallel but merges their results one
// repository at a time, in configured order, so the store keeps a single writer.
// A failure does not cancel the other fetches: every repository ordered before
// the first failing one is merged, and that failure is returned.
func (s *SyncService) syncConcurrently(
	ctx context.Context,
	source ports.ReviewRequestSource,
	repos []domain.RepoRef,
	params SyncParams,
	cutoff *time.Time,
	store *domain.Store,
	result *SyncResult,
) error {
	fetched := make([][]domain.PREntry, len(repos))
	errs := make([]error, len(repos))

	var g errgroup.Group
	g.SetLimit(params.Parallelism)
	for i, repo := range repos {
		g.Go(func() error {
			fetched[i], errs[i] = fetchRepo(ctx, source, repo, params.Username, cutoff)
			return errs[i]
		})
	}
	g.Wait()

	for i := range repos {
		if errs[i] != nil {
			return errs[i]
		}
		mergeEntries(store, fetched[i], result)
	}
	return nil
}

// fetchRepo pages through one repository's closed pull requests and builds entries
// for those merged by username at or after cutoff
func fetchRepo(
	ctx context.Context,
	source ports.ReviewRequestSource,
	repo domain.RepoRef,
	username string,
	cutoff *time.Time,
) ([]domain.PREntry, error) {
	var entries []domain.PREntry

	for page := 1; ; page++ {
		logging.Logger.Debug("Fetching PR page", "repo", repo.String(), "page", page)

		items, err := source.ListClosed(ctx, repo, page, PageSize)
		if err != nil {
			return entries, classifyRemoteError(repo, err)
		}

		for _, item := range items {
			if item.MergedAt == nil || item.Author != username {
				continue
			}
			if cutoff != nil && item.MergedAt.Before(*cutoff) {
				logging.Logger.Debug("Reached cutoff", "repo", repo.String(), "page", page, "number", item.Number)
				return entries, nil
			}

			stats, err := source.GetStats(ctx, repo, item.Number)
			if err != nil {
				return entries, classifyRemoteError(repo, err)
			}
			entries = append(entries, newPREntry(repo, item, stats))
		}

		if len(items) < PageSize {
			return entries, nil
		}
	}
}

func mergeEntries(store *domain.Store, entries []domain.PREntry, result *SyncResult) {
	for _, entry := range entries {
		switch Reconcile(&store.PRs, entry) {
		case OutcomeAdded:
			result.Added++
		case OutcomeUpdated:
			result.Updated++
		}
	}
}

// classifyRemoteError maps source signals onto the domain error taxonomy.
// Unclassified errors are returned unmodified.
func classifyRemoteError(repo domain.RepoRef, err error) error {
	switch {
	case errors.Is(err, domain.ErrRemoteUnauthorized):
		return &domain.CredentialError{Err: err}
	case errors.Is(err, domain.ErrRemoteNotFound):
		return &domain.RemoteAccessError{Repo: repo.String(), Err: err}
	default:
		return err
	}
}

func newPREntry(repo domain.RepoRef, item ports.ReviewRequestSummary, stats ports.ReviewRequestStats) domain.PREntry {
	labels := make([]string, len(item.Labels))
	copy(labels, item.Labels)

	return domain.PREntry{
		Additions:    stats.Additions,
		Body:         item.Body,
		ChangedFiles: stats.ChangedFiles,
		Deletions:    stats.Deletions,
		ID:           item.ID,
		Labels:       labels,
		MergedAt:     item.MergedAt.UTC(),
		Number:       item.Number,
		Repo:         repo.String(),
		Title:        item.Title,
		URL:          item.URL,
	}
}
