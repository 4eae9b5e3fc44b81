package ports

import (
	"context"

	"github.com/CarsonBain/wins/internal/domain"
)

// StoreLoader reads and replaces the whole store snapshot
type StoreLoader interface {
	LoadStore(ctx context.Context) (*domain.Store, error)
	SaveStore(ctx context.Context, store *domain.Store) error
}

// WinReader lists wins in append order
type WinReader interface {
	ListWins(ctx context.Context, r domain.DateRange) ([]domain.WinEntry, error)
}

// WinWriter appends wins
type WinWriter interface {
	AddWin(ctx context.Context, win domain.WinEntry) error
}

// PRReader lists cached pull requests, most recently merged first
type PRReader interface {
	ListPRs(ctx context.Context, r domain.DateRange) ([]domain.PREntry, error)
}

// StoreRepository is the composite interface
type StoreRepository interface {
	PRReader
	StoreLoader
	WinReader
	WinWriter
	Close() error
}
