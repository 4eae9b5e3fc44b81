package storage

import (
	"time"

	"github.com/CarsonBain/wins/internal/domain"
)

// winModelToDomain converts a WinModel (GORM) to domain.WinEntry
func winModelToDomain(m WinModel) domain.WinEntry {
	return domain.WinEntry{
		Content:   m.Content,
		ID:        m.ID,
		Tags:      nonNil(m.Tags),
		Timestamp: m.Timestamp.UTC(),
	}
}

// domainToWinModel converts a domain.WinEntry to WinModel (GORM)
func domainToWinModel(w domain.WinEntry, position int) WinModel {
	return WinModel{
		Content:   w.Content,
		ID:        w.ID,
		Position:  position,
		Tags:      nonNil(w.Tags),
		Timestamp: w.Timestamp.UTC(),
	}
}

// prModelToDomain converts a PREntryModel (GORM) to domain.PREntry
func prModelToDomain(m PREntryModel) domain.PREntry {
	return domain.PREntry{
		Additions:    m.Additions,
		Body:         m.Body,
		ChangedFiles: m.ChangedFiles,
		Deletions:    m.Deletions,
		ID:           m.ID,
		Labels:       nonNil(m.Labels),
		MergedAt:     m.MergedAt.UTC(),
		Number:       m.Number,
		Repo:         m.Repo,
		Title:        m.Title,
		URL:          m.URL,
	}
}

// domainToPRModel converts a domain.PREntry to PREntryModel (GORM)
func domainToPRModel(p domain.PREntry, position int) PREntryModel {
	return PREntryModel{
		Additions:    p.Additions,
		Body:         p.Body,
		ChangedFiles: p.ChangedFiles,
		Deletions:    p.Deletions,
		ID:           p.ID,
		Labels:       nonNil(p.Labels),
		MergedAt:     p.MergedAt.UTC(),
		Number:       p.Number,
		Position:     position,
		Repo:         p.Repo,
		Title:        p.Title,
		URL:          p.URL,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
