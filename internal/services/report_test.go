package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CarsonBain/wins/internal/domain"
	"github.com/CarsonBain/wins/internal/ports"
	portsmocks "github.com/CarsonBain/wins/internal/ports/mocks"
)

func newGolden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func sampleWins() []domain.WinEntry {
	return []domain.WinEntry{
		{
			Content:   "Led the incident review for the payments outage",
			ID:        "w1",
			Tags:      []string{"leadership", "incident"},
			Timestamp: time.Date(2025, 6, 2, 9, 15, 0, 0, time.UTC),
		},
		{
			Content:   "Mentored two new hires",
			ID:        "w2",
			Tags:      []string{},
			Timestamp: time.Date(2025, 6, 5, 17, 0, 0, 0, time.UTC),
		},
	}
}

func samplePRs() []domain.PREntry {
	return []domain.PREntry{
		{
			Additions: 120, Body: "Introduces a per-tenant retry budget.\n", ChangedFiles: 6, Deletions: 14,
			ID: 4200, Labels: []string{"reliability", "backend"}, MergedAt: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
			Number: 42, Repo: "acme/app", Title: "Add retry budget to webhook sender",
		},
		{
			Additions: 3, Body: "   ", ChangedFiles: 9, Deletions: 210,
			ID: 700, Labels: []string{}, MergedAt: time.Date(2025, 6, 8, 8, 0, 0, 0, time.UTC),
			Number: 7, Repo: "acme/lib", Title: "Remove dead feature flags",
		},
		{
			Additions: 50, Body: "  " + strings.Repeat("abcdefghij", 31), ChangedFiles: 4, Deletions: 20,
			ID: 4000, MergedAt: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
			Number: 40, Repo: "acme/app", Title: "Rewrite pagination",
		},
	}
}

func TestFormatContext_Golden(t *testing.T) {
	g := newGolden(t)

	g.Assert(t, "report_context_full", []byte(FormatContext(sampleWins(), samplePRs())))
}

func TestFormatContext_WinsOnlyKeepsTrailingBlankLine(t *testing.T) {
	g := newGolden(t)

	g.Assert(t, "report_context_wins_only", []byte(FormatContext(sampleWins()[1:], nil)))
}

func TestFormatContext_Empty(t *testing.T) {
	assert.Equal(t, "No wins or PRs recorded in the specified time range.", FormatContext(nil, nil))
}

func TestTruncateDescription(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"short", "fixes the bug", "fixes the bug"},
		{"exactly limit", strings.Repeat("a", 300), strings.Repeat("a", 300)},
		{"over limit", strings.Repeat("a", 301), strings.Repeat("a", 300) + "..."},
		{"multibyte counted as characters", strings.Repeat("é", 301), strings.Repeat("é", 300) + "..."},
		{"untrimmed length decides ellipsis", strings.Repeat("a", 299) + "  ", strings.Repeat("a", 299) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncateDescription(tt.body))
		})
	}
}

func TestReportService_Generate(t *testing.T) {
	winReader := portsmocks.NewMockWinReader(t)
	prReader := portsmocks.NewMockPRReader(t)
	completer := portsmocks.NewMockCompleter(t)

	since := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	r := domain.DateRange{Since: &since}

	winReader.EXPECT().ListWins(mock.Anything, r).Return(sampleWins(), nil)
	prReader.EXPECT().ListPRs(mock.Anything, r).Return(samplePRs(), nil)
	completer.EXPECT().Complete(mock.Anything, ports.CompletionRequest{
		MaxTokens:    2048,
		Model:        "anthropic/claude-sonnet-4-6",
		SystemPrompt: ReportThemes.Prompt(),
		UserContent:  FormatContext(sampleWins(), samplePRs()),
	}).Return("## Reliability\n- shipped retries", nil)

	var gotKey string
	service := NewReportService(winReader, prReader, func(apiKey string) ports.Completer {
		gotKey = apiKey
		return completer
	})

	out, err := service.Generate(context.Background(), GenerateParams{APIKey: "sk-or-test", Kind: ReportThemes, Range: r})

	require.NoError(t, err)
	assert.Equal(t, "## Reliability\n- shipped retries", out)
	assert.Equal(t, "sk-or-test", gotKey)
}

func TestReportService_GenerateRequiresAPIKey(t *testing.T) {
	// No expectations: the store and model are never touched
	service := NewReportService(portsmocks.NewMockWinReader(t), portsmocks.NewMockPRReader(t), func(string) ports.Completer {
		t.Fatal("completer must not be created without an API key")
		return nil
	})

	_, err := service.Generate(context.Background(), GenerateParams{Kind: ReportSummary})

	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
}

func TestReportService_GeneratePropagatesModelError(t *testing.T) {
	winReader := portsmocks.NewMockWinReader(t)
	prReader := portsmocks.NewMockPRReader(t)
	completer := portsmocks.NewMockCompleter(t)
	boom := errors.New("model overloaded")

	winReader.EXPECT().ListWins(mock.Anything, domain.DateRange{}).Return(nil, nil)
	prReader.EXPECT().ListPRs(mock.Anything, domain.DateRange{}).Return(nil, nil)
	completer.EXPECT().Complete(mock.Anything, mock.AnythingOfType("ports.CompletionRequest")).Return("", boom)

	service := NewReportService(winReader, prReader, func(string) ports.Completer { return completer })

	_, err := service.Generate(context.Background(), GenerateParams{APIKey: "k", Kind: ReportSummary})

	assert.ErrorIs(t, err, boom)
}

func TestParseReviewFormat(t *testing.T) {
	tests := []struct {
		format   string
		expected ReportKind
		wantErr  bool
	}{
		{"star", ReportReviewStar, false},
		{"bullet", ReportReviewBullet, false},
		{"prose", ReportReviewProse, false},
		{"haiku", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			kind, err := ParseReviewFormat(tt.format)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "star | bullet | prose")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
			assert.NotEmpty(t, kind.Prompt())
			assert.Contains(t, kind.Title(), "Performance Review")
		})
	}
}
