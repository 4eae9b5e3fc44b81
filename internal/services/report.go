package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/CarsonBain/wins/internal/domain"
	"github.com/CarsonBain/wins/internal/logging"
	"github.com/CarsonBain/wins/internal/ports"
)

const (
	// ReportModel is the OpenRouter model used for every report
	ReportModel = "anthropic/claude-sonnet-4-6"

	reportMaxTokens    = 2048
	descriptionMaxLen  = 300
	emptyContextNotice = "No wins or PRs recorded in the specified time range."
)

// ReportService builds AI reports from recorded wins and pull requests
type ReportService struct {
	newCompleter CompleterFactory
	prReader     ports.PRReader
	winReader    ports.WinReader
}

// NewReportService creates a new ReportService
func NewReportService(winReader ports.WinReader, prReader ports.PRReader, newCompleter CompleterFactory) *ReportService {
	return &ReportService{
		newCompleter: newCompleter,
		prReader:     prReader,
		winReader:    winReader,
	}
}

// BuildContext renders the wins and pull requests within r as the markdown
// document sent to the model
func (s *ReportService) BuildContext(ctx context.Context, r domain.DateRange) (string, error) {
	wins, err := s.winReader.ListWins(ctx, r)
	if err != nil {
		return "", fmt.Errorf("failed to list wins: %w", err)
	}
	prs, err := s.prReader.ListPRs(ctx, r)
	if err != nil {
		return "", fmt.Errorf("failed to list pull requests: %w", err)
	}
	return FormatContext(wins, prs), nil
}

// Generate asks the model for a report of the given kind
func (s *ReportService) Generate(ctx context.Context, params GenerateParams) (string, error) {
	if params.APIKey == "" {
		return "", domain.ErrMissingAPIKey
	}
	if !params.Kind.Valid() {
		return "", fmt.Errorf("unknown report kind %q", params.Kind)
	}

	content, err := s.BuildContext(ctx, params.Range)
	if err != nil {
		return "", err
	}

	logging.Logger.Info("Generating report", "kind", params.Kind, "contextBytes", len(content))

	completer := s.newCompleter(params.APIKey)
	response, err := completer.Complete(ctx, ports.CompletionRequest{
		MaxTokens:    reportMaxTokens,
		Model:        ReportModel,
		SystemPrompt: params.Kind.Prompt(),
		UserContent:  content,
	})
	if err != nil {
		logging.Logger.Error("Report generation failed", "kind", params.Kind, "error", err)
		return "", err
	}

	logging.Logger.Info("Report generated", "kind", params.Kind, "responseBytes", len(response))
	return response, nil
}

// FormatContext renders wins and pull requests as markdown sections
func FormatContext(wins []domain.WinEntry, prs []domain.PREntry) string {
	var lines []string

	if len(wins) > 0 {
		lines = append(lines, "## Manual Win Entries")
		for _, w := range wins {
			lines = append(lines, fmt.Sprintf("- [%s]%s %s",
				w.Timestamp.UTC().Format(domain.DateLayout), bracketList(w.Tags), w.Content))
		}
		lines = append(lines, "")
	}

	if len(prs) > 0 {
		lines = append(lines, "## Merged Pull Requests")
		for _, pr := range prs {
			lines = append(lines, fmt.Sprintf("- [%s] %s#%d: %s%s",
				pr.MergedAt.UTC().Format(domain.DateLayout), pr.Repo, pr.Number, pr.Title, bracketList(pr.Labels)))
			lines = append(lines, fmt.Sprintf("  Stats: +%d/-%d, %d files changed",
				pr.Additions, pr.Deletions, pr.ChangedFiles))
			if body := strings.TrimSpace(pr.Body); body != "" {
				lines = append(lines, "  Description: "+truncateDescription(pr.Body))
			}
		}
	}

	if len(lines) == 0 {
		return emptyContextNotice
	}
	return strings.Join(lines, "\n")
}

func bracketList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return " [" + strings.Join(items, ", ") + "]"
}

// truncateDescription keeps the first 300 characters of the trimmed body. The
// ellipsis follows the untrimmed length.
func truncateDescription(body string) string {
	runes := []rune(strings.TrimSpace(body))
	if len(runes) > descriptionMaxLen {
		runes = runes[:descriptionMaxLen]
	}
	out := string(runes)
	if len([]rune(body)) > descriptionMaxLen {
		out += "..."
	}
	return out
}
