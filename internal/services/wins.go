package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CarsonBain/wins/internal/domain"
	"github.com/CarsonBain/wins/internal/logging"
	"github.com/CarsonBain/wins/internal/ports"
)

// WinService records and lists wins
type WinService struct {
	now       func() time.Time
	prReader  ports.PRReader
	winReader ports.WinReader
	winWriter ports.WinWriter
}

// NewWinService creates a new WinService. A nil now uses time.Now.
func NewWinService(
	winReader ports.WinReader,
	winWriter ports.WinWriter,
	prReader ports.PRReader,
	now func() time.Time,
) *WinService {
	if now == nil {
		now = time.Now
	}
	return &WinService{
		now:       now,
		prReader:  prReader,
		winReader: winReader,
		winWriter: winWriter,
	}
}

// Log appends a new win. Wins are never deduplicated.
func (s *WinService) Log(ctx context.Context, params LogParams) (domain.WinEntry, error) {
	message := strings.TrimSpace(params.Message)
	if message == "" {
		return domain.WinEntry{}, domain.ErrEmptyWin
	}

	timestamp := s.now()
	if params.Date != nil {
		timestamp = *params.Date
	}

	win := domain.WinEntry{
		Content:   message,
		ID:        uuid.NewString(),
		Tags:      NormalizeTags(params.Tags),
		Timestamp: timestamp.UTC(),
	}

	logging.Logger.Info("Logging win", "id", win.ID, "tags", win.Tags, "timestamp", win.Timestamp)

	if err := s.winWriter.AddWin(ctx, win); err != nil {
		logging.Logger.Error("Failed to save win", "error", err)
		return domain.WinEntry{}, fmt.Errorf("failed to save win: %w", err)
	}

	return win, nil
}

// List returns wins in append order and, when requested, pull requests most
// recently merged first
func (s *WinService) List(ctx context.Context, params ListParams) (ListResult, error) {
	var result ListResult

	wins, err := s.winReader.ListWins(ctx, params.Range)
	if err != nil {
		return result, fmt.Errorf("failed to list wins: %w", err)
	}
	result.Wins = wins

	if params.IncludePRs {
		prs, err := s.prReader.ListPRs(ctx, params.Range)
		if err != nil {
			return result, fmt.Errorf("failed to list pull requests: %w", err)
		}
		result.PRs = prs
	}

	logging.Logger.Debug("Listed entries", "wins", len(result.Wins), "prs", len(result.PRs))
	return result, nil
}

// NormalizeTags trims every tag, splits comma-joined values and drops empties
func NormalizeTags(raw []string) []string {
	tags := []string{}
	for _, value := range raw {
		for _, tag := range strings.Split(value, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
