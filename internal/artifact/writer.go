package artifact

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/voc-pipeline/internal/aggregator"
	"github.com/nguyentantai21042004/voc-pipeline/pkg/fileutil"
)

// Document names, in the order they are reported.
const (
	NameStats             = "stats"
	NameConversations     = "conversations"
	NameThemes            = "themes"
	NameWordCloud         = "word-cloud"
	NameTimeline          = "timeline"
	NameKPIs              = "kpis"
	NameMatrix            = "prioritization-matrix"
	NameChannelComparison = "channel-comparison"
	NameSitePerformance   = "site-performance"
)

type document struct {
	name string
	body any
}

func documents(r *aggregator.Report) []document {
	return []document{
		{NameStats, r.Stats},
		{NameConversations, r.Conversations},
		{NameThemes, r.Themes},
		{NameWordCloud, r.WordCloud},
		{NameTimeline, r.Timeline},
		{NameKPIs, r.KPIs},
		{NameMatrix, r.Matrix},
		{NameChannelComparison, r.Channels},
		{NameSitePerformance, r.Sites},
	}
}

// FileName returns the on-disk name of document name.
func FileName(name, suffix string) string {
	return name + suffix + ".json"
}

func (w *implWriter) WriteAll(ctx context.Context, report *aggregator.Report, dir string) ([]string, error) {
	if err := fileutil.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	docs := documents(report)
	paths := make([]string, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	for i, d := range docs {
		d := d
		paths[i] = filepath.Join(dir, FileName(d.name, w.suffix))
		path := paths[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := fileutil.WriteJSONFileAtomic(path, d.body, w.pretty); err != nil {
				return fmt.Errorf("write %s: %w", d.name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, p := range paths {
		w.logger.Info(ctx, "  -> %s", filepath.Base(p))
	}
	return paths, nil
}
