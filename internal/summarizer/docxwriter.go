package summarizer

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/voc-pipeline/internal/aggregator"
)

const (
	fontName = "Times New Roman"
	fontSize = 12

	// briefingThemes caps the theme and matrix sections.
	briefingThemes = 5
)

// writeBriefing renders a one-page docx of the run for readers without the dashboard.
func writeBriefing(r Results, report *aggregator.Report, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	para := func() *docx.Paragraph { return doc.AddParagraph("") }

	addRun(para(), "Voix du client - synthese", true, 16)
	addRun(para(), fmt.Sprintf("%d conversations analysees", r.Total), false, fontSize)

	addHeading(para(), "Repartition des sentiments")
	addBullet(para(), fmt.Sprintf("Positif: %d (%.1f%%)", r.Positive, r.PositivePercentage))
	addBullet(para(), fmt.Sprintf("Neutre: %d (%.1f%%)", r.Neutral, r.NeutralPercentage))
	addBullet(para(), fmt.Sprintf("Negatif: %d (%.1f%%)", r.Negative, r.NegativePercentage))
	addBullet(para(), fmt.Sprintf("Score de satisfaction: %d%%", r.Satisfaction))

	addHeading(para(), "Theme prioritaire")
	kpi := report.KPIs.PriorityTheme
	addBullet(para(), fmt.Sprintf("%s: %d mentions, %d%% negatives (impact %d)",
		kpi.Theme, kpi.Mentions, kpi.NegativePercentage, kpi.Impact))

	if len(report.Themes) > 0 {
		addHeading(para(), "Themes les plus cites")
		for i, t := range report.Themes {
			if i == briefingThemes {
				break
			}
			addBullet(para(), fmt.Sprintf("%s: %d mentions (%d%% negatives)", t.Theme, t.Count, t.Percentage.Negative))
		}
	}

	priorities := 0
	for _, t := range report.Matrix.Themes {
		if t.Quadrant != aggregator.QuadrantPriorities || priorities == briefingThemes {
			continue
		}
		if priorities == 0 {
			addHeading(para(), "Priorites d'action")
		}
		addBullet(para(), fmt.Sprintf("%s: frequence %.1f%%, impact %d", t.Label, t.Frequency, t.Impact))
		priorities++
	}

	addHeading(para(), "Duree des appels")
	addRun(para(), report.Channels.Insight.Message, false, fontSize)
	addRun(para(), report.Channels.Insight.Recommendation, false, fontSize)

	return doc.SaveTo(outputPath)
}

func addHeading(p *docx.Paragraph, text string) {
	addRun(p, text, true, 14)
}

func addBullet(p *docx.Paragraph, text string) {
	addRun(p, "• "+text, false, fontSize)
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
