package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CarsonBain/wins/internal/domain"
	portsmocks "github.com/CarsonBain/wins/internal/ports/mocks"
)

func TestStoreService_ImportDeduplicatesPRs(t *testing.T) {
	loader := portsmocks.NewMockStoreLoader(t)
	watermark := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	snapshot := &domain.Store{
		LastPRSync: &watermark,
		PRs: []domain.PREntry{
			{ID: 1, Title: "first"},
			{ID: 2, Title: "second"},
			{ID: 1, Title: "first, again"},
		},
		Wins: sampleWins(),
	}

	var saved *domain.Store
	loader.EXPECT().SaveStore(mock.Anything, mock.AnythingOfType("*domain.Store")).
		Run(func(_ context.Context, store *domain.Store) { saved = store }).
		Return(nil)

	result, err := NewStoreService(loader).Import(context.Background(), snapshot)

	require.NoError(t, err)
	assert.Equal(t, ImportResult{DuplicatePRs: 1, PRs: 2, Wins: 2}, result)
	require.NotNil(t, saved)
	assert.Equal(t, []domain.PREntry{{ID: 1, Title: "first, again"}, {ID: 2, Title: "second"}}, saved.PRs)
	assert.Equal(t, sampleWins(), saved.Wins)
	assert.Equal(t, &watermark, saved.LastPRSync)
}

func TestStoreService_ImportSaveFailure(t *testing.T) {
	loader := portsmocks.NewMockStoreLoader(t)
	boom := errors.New("readonly database")
	loader.EXPECT().SaveStore(mock.Anything, mock.Anything).Return(boom)

	_, err := NewStoreService(loader).Import(context.Background(), domain.NewStore())

	assert.ErrorIs(t, err, boom)
}

func TestStoreService_Export(t *testing.T) {
	loader := portsmocks.NewMockStoreLoader(t)
	store := domain.NewStore()
	store.Wins = sampleWins()
	loader.EXPECT().LoadStore(mock.Anything).Return(store, nil)

	got, err := NewStoreService(loader).Export(context.Background())

	require.NoError(t, err)
	assert.Same(t, store, got)
}

func TestStoreService_SaveWrapsFailure(t *testing.T) {
	loader := portsmocks.NewMockStoreLoader(t)
	boom := errors.New("disk full")
	store := domain.NewStore()
	loader.EXPECT().SaveStore(mock.Anything, store).Return(boom)

	err := NewStoreService(loader).Save(context.Background(), store)

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to save store")
}
