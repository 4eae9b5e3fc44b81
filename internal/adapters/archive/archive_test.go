package archive

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarsonBain/wins/internal/domain"
)

func sampleStore() *domain.Store {
	watermark := time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)
	return &domain.Store{
		LastPRSync: &watermark,
		PRs: []domain.PREntry{{
			Additions: 5, Body: "multi\nline", ChangedFiles: 1, Deletions: 2, ID: 77,
			Labels: []string{"docs"}, MergedAt: time.Date(2025, 6, 19, 8, 30, 0, 0, time.UTC),
			Number: 7, Repo: "acme/app", Title: "Docs: quickstart", URL: "https://github.com/acme/app/pull/7",
		}},
		Wins: []domain.WinEntry{{
			Content: "Shipped: the thing", ID: "abc", Tags: []string{},
			Timestamp: time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC),
		}},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, sampleStore(), format))

			got, err := Decode(&buf, format)

			require.NoError(t, err)
			assert.Equal(t, sampleStore(), got)
		})
	}
}

func TestEncode_UsesStoreFieldNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleStore(), FormatJSON))

	out := buf.String()
	for _, key := range []string{`"wins"`, `"prs"`, `"lastPrSync"`, `"mergedAt"`, `"changedFiles"`, `"timestamp"`} {
		assert.Contains(t, out, key)
	}
}

func TestDecode_LegacyStoreFile(t *testing.T) {
	f, err := os.Open("testdata/store.json")
	require.NoError(t, err)
	defer f.Close()

	store, err := Decode(f, DetectFormat("testdata/store.json"))

	require.NoError(t, err)
	assert.Nil(t, store.LastPRSync)
	require.Len(t, store.Wins, 1)
	assert.Equal(t, []string{"planning", "leadership"}, store.Wins[0].Tags)
	assert.True(t, time.Date(2025, 4, 2, 14, 3, 11, 512000000, time.UTC).Equal(store.Wins[0].Timestamp))
	require.Len(t, store.PRs, 1)
	assert.Equal(t, int64(2147483650), store.PRs[0].ID)
	assert.Equal(t, 11, store.PRs[0].ChangedFiles)
	assert.Equal(t, []string{}, store.PRs[0].Labels)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader("  \n"), FormatJSON)
	assert.ErrorContains(t, err, "empty")

	_, err = Decode(strings.NewReader("{not json"), FormatJSON)
	assert.ErrorContains(t, err, "decode json")

	_, err = Decode(strings.NewReader("{}"), Format("toml"))
	assert.ErrorContains(t, err, "unknown format")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("csv")
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("backup.yml"))
	assert.Equal(t, FormatYAML, DetectFormat("backup.YAML"))
	assert.Equal(t, FormatJSON, DetectFormat("store.json"))
	assert.Equal(t, FormatJSON, DetectFormat("export"))
}
