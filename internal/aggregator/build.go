package aggregator

import (
	"fmt"
	"math"
)

const (
	minThemeMentions  = 2
	minMatrixMentions = 3
	minKeywordCount   = 2
	maxWordCloud      = 50

	// matrix quadrant thresholds
	frequencyThreshold = 10.0
	impactScale        = 20

	trendStable = "stable"
	noTheme     = "N/A"

	channelRecommendation = "Ameliorer la resolution au premier contact pour reduire la duree des appels et augmenter la satisfaction."
)

// Report renders the nine documents from the accumulated counters.
func (a *Accumulator) Report() *Report {
	total := a.overall.Total()
	_, top, _ := a.topNegativeTheme()
	return &Report{
		Stats:         a.stats(total),
		Conversations: a.conversations,
		Themes:        a.themeDistribution(),
		WordCloud:     a.wordCloud(),
		Timeline:      a.timeline(),
		KPIs:          a.kpis(total),
		Matrix:        a.matrix(total),
		Channels:      a.channels(),
		Sites:         a.sitePerformance(total),

		TopNegativeMentions: top.Negative,
	}
}

func (a *Accumulator) stats(total int) Stats {
	c := a.overall
	return Stats{
		Total:              total,
		Positive:           c.Positive,
		Neutral:            c.Neutral,
		Negative:           c.Negative,
		PositivePercentage: percent1(c.Positive, total),
		NeutralPercentage:  percent1(c.Neutral, total),
		NegativePercentage: percent1(c.Negative, total),
	}
}

func (a *Accumulator) themeDistribution() []ThemeStat {
	out := []ThemeStat{}
	for _, e := range a.themes.byTotal() {
		t := e.counts.Total()
		if t < minThemeMentions {
			continue
		}
		out = append(out, ThemeStat{
			Theme:     e.key,
			Count:     t,
			Sentiment: e.counts,
			Percentage: SentimentPercentages{
				Positive: percentInt(e.counts.Positive, t),
				Neutral:  percentInt(e.counts.Neutral, t),
				Negative: percentInt(e.counts.Negative, t),
			},
		})
	}
	return out
}

func (a *Accumulator) wordCloud() []WordCloudEntry {
	out := []WordCloudEntry{}
	for _, e := range a.keywords.byTotal() {
		if len(out) == maxWordCloud {
			break
		}
		count := e.counts.Total()
		if count < minKeywordCount {
			continue
		}
		out = append(out, WordCloudEntry{Value: e.key, Count: count, Sentiment: e.counts})
	}
	return out
}

func (a *Accumulator) timeline() []TimelinePoint {
	out := []TimelinePoint{}
	for _, e := range a.months.sortedKeys() {
		vol := e.counts.Total()
		if vol == 0 {
			continue
		}
		out = append(out, TimelinePoint{
			Month:        e.key,
			Volume:       vol,
			Satisfaction: round1(satisfaction(e.counts)),
		})
	}
	return out
}

// topNegativeTheme is the theme with the most negative mentions; the first seen wins ties.
func (a *Accumulator) topNegativeTheme() (string, SentimentCounts, bool) {
	var (
		best   string
		counts SentimentCounts
		found  bool
	)
	for _, e := range a.themes.inOrder() {
		if e.counts.Negative > counts.Negative {
			best, counts, found = e.key, e.counts, true
		}
	}
	return best, counts, found
}

func (a *Accumulator) kpis(total int) KPIs {
	c := a.overall
	score := 0
	if total > 0 {
		score = roundInt(satisfaction(c))
	}

	priority := PriorityThemeKPI{Theme: noTheme, Label: "THEME PRIORITAIRE #1"}
	if theme, counts, ok := a.topNegativeTheme(); ok {
		priority.Theme = theme
		priority.Mentions = counts.Total()
		priority.NegativePercentage = percentInt(counts.Negative, counts.Total())
		priority.Impact = -percentInt(counts.Negative, total)
	}

	return KPIs{
		Verbatims: TrendKPI{
			Value:          total,
			TrendDirection: trendStable,
			Label:          "VERBATIMS TRAITES",
			Comparison:     fmt.Sprintf("Analyse de %d conversations DPD", total),
		},
		Satisfaction: TrendKPI{
			Value:          score,
			Unit:           "%",
			TrendDirection: trendStable,
			Label:          "SCORE SATISFACTION",
			Comparison:     "Donnees reelles production",
		},
		Promoters:     ShareKPI{Value: c.Positive, Percentage: percentInt(c.Positive, total), Label: "PROMOTEURS"},
		Passives:      ShareKPI{Value: c.Neutral, Percentage: percentInt(c.Neutral, total), Label: "PASSIFS"},
		Detractors:    ShareKPI{Value: c.Negative, Percentage: percentInt(c.Negative, total), Label: "DETRACTEURS"},
		PriorityTheme: priority,
	}
}

// quadrantFor places a theme on the frequency × impact grid.
func quadrantFor(frequency float64, impact int) Quadrant {
	switch {
	case frequency >= frequencyThreshold && impact < 0:
		return QuadrantPriorities
	case frequency >= frequencyThreshold:
		return QuadrantStrengths
	case impact < 0:
		return QuadrantEmerging
	default:
		return QuadrantNeutral
	}
}

func (a *Accumulator) matrix(total int) PrioritizationMatrix {
	baseline := 0
	if total > 0 {
		baseline = roundInt(satisfaction(a.overall))
	}

	m := PrioritizationMatrix{
		GlobalSatisfactionBaseline: baseline,
		TotalVerbatims:             total,
		Themes:                     []MatrixTheme{},
	}
	for _, e := range a.themes.byTotal() {
		t := e.counts.Total()
		if t < minMatrixMentions {
			continue
		}
		freq := percent1(t, total)
		impact := roundInt(float64(e.counts.Positive-e.counts.Negative) / float64(t) * impactScale)
		m.Themes = append(m.Themes, MatrixTheme{
			Label:       e.key,
			Frequency:   freq,
			Impact:      impact,
			Mentions:    t,
			NegativePct: percentInt(e.counts.Negative, t),
			PositivePct: percentInt(e.counts.Positive, t),
			Quadrant:    quadrantFor(freq, impact),
		})
	}
	return m
}

func channelStats(c SentimentCounts) ChannelStats {
	t := c.Total()
	return ChannelStats{
		Total:              t,
		Positive:           c.Positive,
		Neutral:            c.Neutral,
		Negative:           c.Negative,
		PositivePercentage: percent1(c.Positive, t),
		NeutralPercentage:  percent1(c.Neutral, t),
		NegativePercentage: percent1(c.Negative, t),
		SatisfactionScore:  percent1(c.Positive, t),
	}
}

func (a *Accumulator) channels() ChannelComparison {
	short := channelStats(a.short)
	long := channelStats(a.long)
	return ChannelComparison{
		Short: short,
		Long:  long,
		Insight: ChannelInsight{
			Difference: round1(math.Abs(short.SatisfactionScore - long.SatisfactionScore)),
			Message: fmt.Sprintf(
				"Les appels courts <3min (%d conv.) ont %.1f%% de satisfaction vs %.1f%% pour les appels longs (%d conv.). Les appels longs sont lies a des problemes complexes.",
				short.Total, short.SatisfactionScore, long.SatisfactionScore, long.Total),
			Recommendation: channelRecommendation,
		},
	}
}

func (a *Accumulator) sitePerformance(total int) []SitePerformance {
	out := []SitePerformance{}
	if total == 0 {
		return out
	}
	for _, site := range Sites {
		c := a.sites.get(site)
		t := c.Total()
		out = append(out, SitePerformance{
			Site:                   site,
			Total:                  t,
			Positive:               c.Positive,
			Neutral:                c.Neutral,
			Negative:               c.Negative,
			SatisfactionPercentage: percent1(c.Positive, t),
			Volume:                 t,
		})
	}
	return out
}
