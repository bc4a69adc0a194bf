package summarizer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/voc-pipeline/internal/aggregator"
)

const rule = "============================================================"

// Results is the end-of-run digest shared by the log and the briefing.
type Results struct {
	Total               int
	Positive            int
	Neutral             int
	Negative            int
	PositivePercentage  float64
	NeutralPercentage   float64
	NegativePercentage  float64
	Satisfaction        int
	Themes              int
	Keywords            int
	TopNegativeTheme    string
	TopNegativeMentions int
	ShortCalls          int
	LongCalls           int
	Output              string
}

// Digest extracts the results summary of report.
func Digest(report *aggregator.Report, output string) Results {
	s := report.Stats
	return Results{
		Total:               s.Total,
		Positive:            s.Positive,
		Neutral:             s.Neutral,
		Negative:            s.Negative,
		PositivePercentage:  s.PositivePercentage,
		NeutralPercentage:   s.NeutralPercentage,
		NegativePercentage:  s.NegativePercentage,
		Satisfaction:        report.KPIs.Satisfaction.Value,
		Themes:              len(report.Themes),
		Keywords:            len(report.WordCloud),
		TopNegativeTheme:    report.KPIs.PriorityTheme.Theme,
		TopNegativeMentions: report.TopNegativeMentions,
		ShortCalls:          report.Channels.Short.Total,
		LongCalls:           report.Channels.Long.Total,
		Output:              output,
	}
}

// Lines renders the digest as the results summary block.
func (r Results) Lines() []string {
	return []string{
		rule,
		"  RESULTS SUMMARY",
		rule,
		fmt.Sprintf("  Total conversations: %d", r.Total),
		fmt.Sprintf("  Positive: %4d (%5.1f%%)", r.Positive, r.PositivePercentage),
		fmt.Sprintf("  Neutral:  %4d (%5.1f%%)", r.Neutral, r.NeutralPercentage),
		fmt.Sprintf("  Negative: %4d (%5.1f%%)", r.Negative, r.NegativePercentage),
		fmt.Sprintf("  Satisfaction score: %d%%", r.Satisfaction),
		fmt.Sprintf("  Themes detected: %d", r.Themes),
		fmt.Sprintf("  Keywords extracted: %d", r.Keywords),
		fmt.Sprintf("  Top negative theme: %s (%d neg mentions)", r.TopNegativeTheme, r.TopNegativeMentions),
		fmt.Sprintf("  Short calls (<3m): %d | Long calls (>=3m): %d", r.ShortCalls, r.LongCalls),
		fmt.Sprintf("  Output: %s", r.Output),
		rule,
	}
}

func (r Results) String() string {
	return strings.Join(r.Lines(), "\n")
}

func (s *implSummarizer) Summarize(ctx context.Context, report *aggregator.Report, destDir string) (string, error) {
	results := Digest(report, destDir)
	for _, line := range results.Lines() {
		s.logger.Info(ctx, "%s", line)
	}

	if !s.docx {
		return "", nil
	}

	path := filepath.Join(destDir, "briefing"+s.suffix+".docx")
	if err := writeBriefing(results, report, path); err != nil {
		return "", fmt.Errorf("write briefing: %w", err)
	}
	s.logger.Info(ctx, "  -> %s", filepath.Base(path))
	return path, nil
}
