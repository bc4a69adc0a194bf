package artifact

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/voc-pipeline/internal/aggregator"
	"github.com/nguyentantai21042004/voc-pipeline/internal/logger"
	"github.com/nguyentantai21042004/voc-pipeline/internal/models"
)

func sampleReport(t *testing.T) *aggregator.Report {
	t.Helper()
	convs := []models.Conversation{
		{Summary: "Colis endommagé, le client exprime sa colère", AudioDuration: 240},
		{Summary: "Merci pour la livraison rapide", AudioDuration: 65},
	}
	results := []models.Classification{
		{Sentiment: models.SentimentNegative, Confidence: 5, Themes: []string{"Colis endommage"}, Keywords: []string{"colis", "endommage"}},
		{Sentiment: models.SentimentPositive, Confidence: 4, Themes: []string{"Service client"}, Keywords: []string{"colis", "livraison"}},
	}
	r, err := aggregator.New().Aggregate(convs, results)
	require.NoError(t, err)
	return r
}

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	w := New(DefaultSuffix, true, logger.NewNop())

	paths, err := w.WriteAll(context.Background(), sampleReport(t), dir)
	require.NoError(t, err)

	want := []string{
		"stats_dpd.json",
		"conversations_dpd.json",
		"themes_dpd.json",
		"word-cloud_dpd.json",
		"timeline_dpd.json",
		"kpis_dpd.json",
		"prioritization-matrix_dpd.json",
		"channel-comparison_dpd.json",
		"site-performance_dpd.json",
	}
	require.Len(t, paths, len(want))
	for i, name := range want {
		assert.Equal(t, filepath.Join(dir, name), paths[i])
		assert.FileExists(t, paths[i])
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, len(want))
}

func TestWriteAllContent(t *testing.T) {
	dir := t.TempDir()
	w := New(DefaultSuffix, true, logger.NewNop())

	_, err := w.WriteAll(context.Background(), sampleReport(t), dir)
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, "stats_dpd.json"))
	require.NoError(t, err)
	var stats map[string]any
	require.NoError(t, json.Unmarshal(b, &stats))
	assert.Equal(t, 2.0, stats["total"])
	assert.Equal(t, 50.0, stats["negative_percentage"])
	assert.True(t, strings.HasPrefix(string(b), "{\n  \"total\": 2,"))

	b, err = os.ReadFile(filepath.Join(dir, "conversations_dpd.json"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "endommagé", "non-ASCII text is written verbatim")
	assert.Contains(t, string(b), `"duration": "4:00"`)

	b, err = os.ReadFile(filepath.Join(dir, "channel-comparison_dpd.json"))
	require.NoError(t, err)
	var channels map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &channels))
	assert.Contains(t, channels, "email")
	assert.Contains(t, channels, "call")
	assert.Contains(t, channels, "insight")
}

func TestWriteAllCompactAndSuffix(t *testing.T) {
	dir := t.TempDir()
	w := New("_test", false, logger.NewNop())

	paths, err := w.WriteAll(context.Background(), sampleReport(t), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "stats_test.json"), paths[0])

	b, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.NotContains(t, strings.TrimSpace(string(b)), "\n")
}

func TestWriteAllEmptyReport(t *testing.T) {
	r, err := aggregator.New().Aggregate(nil, nil)
	require.NoError(t, err)

	dir := t.TempDir()
	_, err = New(DefaultSuffix, false, logger.NewNop()).WriteAll(context.Background(), r, dir)
	require.NoError(t, err)

	for _, name := range []string{NameConversations, NameThemes, NameWordCloud, NameTimeline, NameSitePerformance} {
		b, err := os.ReadFile(filepath.Join(dir, FileName(name, DefaultSuffix)))
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(b), name)
	}
}

func TestWriteAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(DefaultSuffix, false, logger.NewNop()).WriteAll(ctx, sampleReport(t), t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}
