package archive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/CarsonBain/wins/internal/domain"
)

// Format is an export encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// document mirrors the store.json layout of earlier releases so those files import as is
type document struct {
	LastPRSync *time.Time  `json:"lastPrSync" yaml:"lastPrSync"`
	PRs        []prRecord  `json:"prs" yaml:"prs"`
	Wins       []winRecord `json:"wins" yaml:"wins"`
}

type winRecord struct {
	Content   string    `json:"content" yaml:"content"`
	ID        string    `json:"id" yaml:"id"`
	Tags      []string  `json:"tags" yaml:"tags"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

type prRecord struct {
	Additions    int       `json:"additions" yaml:"additions"`
	Body         string    `json:"body" yaml:"body"`
	ChangedFiles int       `json:"changedFiles" yaml:"changedFiles"`
	Deletions    int       `json:"deletions" yaml:"deletions"`
	ID           int64     `json:"id" yaml:"id"`
	Labels       []string  `json:"labels" yaml:"labels"`
	MergedAt     time.Time `json:"mergedAt" yaml:"mergedAt"`
	Number       int       `json:"number" yaml:"number"`
	Repo         string    `json:"repo" yaml:"repo"`
	Title        string    `json:"title" yaml:"title"`
	URL          string    `json:"url" yaml:"url"`
}

// ParseFormat validates a --format value
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("archive: unknown format %q (use json or yaml)", s)
	}
}

// DetectFormat picks the format from a file extension, defaulting to JSON
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode writes the full store to w
func Encode(w io.Writer, store *domain.Store, format Format) error {
	doc := toDocument(store)

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("archive: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("archive: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("archive: unknown format %q", format)
	}
}

// Decode reads a store written by Encode or by earlier releases
func Decode(r io.Reader, format Format) (*domain.Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("archive: read: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("archive: payload is empty")
	}

	var doc document
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("archive: unknown format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("archive: decode %s: %w", format, err)
	}

	return fromDocument(doc), nil
}

func toDocument(store *domain.Store) document {
	doc := document{
		LastPRSync: store.LastPRSync,
		PRs:        make([]prRecord, 0, len(store.PRs)),
		Wins:       make([]winRecord, 0, len(store.Wins)),
	}
	for _, w := range store.Wins {
		doc.Wins = append(doc.Wins, winRecord{
			Content:   w.Content,
			ID:        w.ID,
			Tags:      nonNil(w.Tags),
			Timestamp: w.Timestamp.UTC(),
		})
	}
	for _, p := range store.PRs {
		doc.PRs = append(doc.PRs, prRecord{
			Additions:    p.Additions,
			Body:         p.Body,
			ChangedFiles: p.ChangedFiles,
			Deletions:    p.Deletions,
			ID:           p.ID,
			Labels:       nonNil(p.Labels),
			MergedAt:     p.MergedAt.UTC(),
			Number:       p.Number,
			Repo:         p.Repo,
			Title:        p.Title,
			URL:          p.URL,
		})
	}
	return doc
}

func fromDocument(doc document) *domain.Store {
	store := domain.NewStore()
	if doc.LastPRSync != nil {
		t := doc.LastPRSync.UTC()
		store.LastPRSync = &t
	}
	for _, w := range doc.Wins {
		store.Wins = append(store.Wins, domain.WinEntry{
			Content:   w.Content,
			ID:        w.ID,
			Tags:      nonNil(w.Tags),
			Timestamp: w.Timestamp.UTC(),
		})
	}
	for _, p := range doc.PRs {
		store.PRs = append(store.PRs, domain.PREntry{
			Additions:    p.Additions,
			Body:         p.Body,
			ChangedFiles: p.ChangedFiles,
			Deletions:    p.Deletions,
			ID:           p.ID,
			Labels:       nonNil(p.Labels),
			MergedAt:     p.MergedAt.UTC(),
			Number:       p.Number,
			Repo:         p.Repo,
			Title:        p.Title,
			URL:          p.URL,
		})
	}
	return store
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
