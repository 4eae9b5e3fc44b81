package services

import (
	"context"
	"fmt"

	"github.com/CarsonBain/wins/internal/domain"
	"github.com/CarsonBain/wins/internal/logging"
	"github.com/CarsonBain/wins/internal/ports"
)

// StoreService exports and replaces the whole store
type StoreService struct {
	loader ports.StoreLoader
}

// NewStoreService creates a new StoreService
func NewStoreService(loader ports.StoreLoader) *StoreService {
	return &StoreService{loader: loader}
}

// Export returns the full store snapshot
func (s *StoreService) Export(ctx context.Context) (*domain.Store, error) {
	store, err := s.loader.LoadStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load store: %w", err)
	}
	return store, nil
}

// Save persists a snapshot previously returned by Export
func (s *StoreService) Save(ctx context.Context, store *domain.Store) error {
	if err := s.loader.SaveStore(ctx, store); err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}
	return nil
}

// Import replaces the persisted store with snapshot. Pull requests are
// reconciled by ID so the imported store never holds duplicates; the last
// occurrence wins, in the position of the first.
func (s *StoreService) Import(ctx context.Context, snapshot *domain.Store) (ImportResult, error) {
	var result ImportResult

	store := domain.NewStore()
	store.LastPRSync = snapshot.LastPRSync
	store.Wins = append(store.Wins, snapshot.Wins...)
	for _, pr := range snapshot.PRs {
		if Reconcile(&store.PRs, pr) == OutcomeUpdated {
			result.DuplicatePRs++
		}
	}

	result.PRs = len(store.PRs)
	result.Wins = len(store.Wins)

	logging.Logger.Info("Importing store",
		"wins", result.Wins,
		"prs", result.PRs,
		"duplicates", result.DuplicatePRs)

	if err := s.loader.SaveStore(ctx, store); err != nil {
		return ImportResult{}, fmt.Errorf("failed to save store: %w", err)
	}
	return result, nil
}
