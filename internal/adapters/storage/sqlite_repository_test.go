package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarsonBain/wins/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepositoryForDir(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func testStore() *domain.Store {
	watermark := time.Date(2025, 6, 20, 12, 0, 0, 123456789, time.UTC)
	return &domain.Store{
		LastPRSync: &watermark,
		PRs: []domain.PREntry{
			{
				Additions: 12, Body: "second", ChangedFiles: 2, Deletions: 3, ID: 2002,
				Labels: []string{"bug", "p1"}, MergedAt: time.Date(2025, 6, 12, 8, 0, 0, 0, time.UTC),
				Number: 22, Repo: "acme/app", Title: "Fix crash", URL: "https://github.com/acme/app/pull/22",
			},
			{
				Additions: 1, ChangedFiles: 1, ID: 1001, Labels: []string{},
				MergedAt: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
				Number: 11, Repo: "acme/lib", Title: "Bump deps", URL: "https://github.com/acme/lib/pull/11",
			},
		},
		Wins: []domain.WinEntry{
			{Content: "z first", ID: "b", Tags: []string{"x"}, Timestamp: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)},
			{Content: "a second", ID: "a", Tags: []string{}, Timestamp: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)},
		},
	}
}

func TestSQLiteRepository_LoadEmptyStore(t *testing.T) {
	repo := newTestRepository(t)

	store, err := repo.LoadStore(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.NewStore(), store)
}

func TestSQLiteRepository_SaveLoadRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	want := testStore()

	require.NoError(t, repo.SaveStore(ctx, want))
	got, err := repo.LoadStore(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got, "order and every field survive a round trip")
}

func TestSQLiteRepository_SaveReplacesSnapshot(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.SaveStore(ctx, testStore()))

	next := testStore()
	next.PRs = next.PRs[:1]
	next.PRs[0].Title = "Fix crash (retitled)"
	next.Wins = nil

	require.NoError(t, repo.SaveStore(ctx, next))
	got, err := repo.LoadStore(ctx)

	require.NoError(t, err)
	require.Len(t, got.PRs, 1)
	assert.Equal(t, "Fix crash (retitled)", got.PRs[0].Title)
	assert.Empty(t, got.Wins)
	assert.True(t, next.LastPRSync.Equal(*got.LastPRSync))
}

func TestSQLiteRepository_SaveClearsWatermark(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.SaveStore(ctx, testStore()))

	require.NoError(t, repo.SaveStore(ctx, domain.NewStore()))
	got, err := repo.LoadStore(ctx)

	require.NoError(t, err)
	assert.Nil(t, got.LastPRSync)
}

func TestSQLiteRepository_AddWinAppends(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.SaveStore(ctx, testStore()))

	added := domain.WinEntry{Content: "third", ID: "c", Tags: []string{"new"}, Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.AddWin(ctx, added))

	wins, err := repo.ListWins(ctx, domain.DateRange{})

	require.NoError(t, err)
	require.Len(t, wins, 3)
	assert.Equal(t, []string{"b", "a", "c"}, []string{wins[0].ID, wins[1].ID, wins[2].ID}, "append order, not timestamp order")
	assert.Equal(t, added, wins[2])
}

func TestSQLiteRepository_AddWinToEmptyStore(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.AddWin(ctx, domain.WinEntry{Content: "only", ID: "x", Timestamp: time.Now()}))

	wins, err := repo.ListWins(ctx, domain.DateRange{})
	require.NoError(t, err)
	require.Len(t, wins, 1)
	assert.Equal(t, []string{}, wins[0].Tags)
}

func TestSQLiteRepository_ListFiltersByRange(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.SaveStore(ctx, testStore()))

	since := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	r := domain.DateRange{Since: &since, Until: &until}

	wins, err := repo.ListWins(ctx, r)
	require.NoError(t, err)
	prs, err := repo.ListPRs(ctx, r)
	require.NoError(t, err)

	require.Len(t, wins, 1)
	assert.Equal(t, "b", wins[0].ID)
	require.Len(t, prs, 1)
	assert.Equal(t, int64(1001), prs[0].ID)
}

func TestAcquireLock_SecondHolderTimesOut(t *testing.T) {
	previous := lockTimeout
	lockTimeout = 200 * time.Millisecond
	t.Cleanup(func() { lockTimeout = previous })

	path := filepath.Join(t.TempDir(), LockFile)
	first, err := AcquireLock(path)
	require.NoError(t, err)

	_, err = AcquireLock(path)
	assert.True(t, errors.Is(err, ErrStoreLocked), "got %v", err)

	first.Release()
	second, err := AcquireLock(path)
	require.NoError(t, err)
	second.Release()
	second.Release()
}
