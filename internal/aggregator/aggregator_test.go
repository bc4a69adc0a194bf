package aggregator

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/voc-pipeline/internal/classifier"
	"github.com/nguyentantai21042004/voc-pipeline/internal/keyword"
	"github.com/nguyentantai21042004/voc-pipeline/internal/logger"
	"github.com/nguyentantai21042004/voc-pipeline/internal/models"
	"github.com/nguyentantai21042004/voc-pipeline/internal/sentiment"
	"github.com/nguyentantai21042004/voc-pipeline/internal/theme"
)

func fixture() ([]models.Conversation, []models.Classification) {
	convs := []models.Conversation{
		{Summary: "premier appel", AudioDuration: 120},
		{Summary: "deuxieme appel", AudioDuration: 200},
		{Summary: "troisieme appel"},
		{Summary: "quatrieme appel", AudioDuration: 185.5},
	}
	results := []models.Classification{
		{Sentiment: models.SentimentPositive, Confidence: 5, Themes: []string{"A", "B"}, Keywords: []string{"k1", "k2"}},
		{Sentiment: models.SentimentNegative, Confidence: 4, Themes: []string{"A"}, Keywords: []string{"k1"}},
		{Sentiment: models.SentimentNegative, Confidence: 3, Themes: []string{"B", "A"}, Keywords: []string{"k2", "k1"}},
		{Sentiment: models.SentimentNeutral, Confidence: 3, Themes: []string{"C"}, Keywords: []string{"k1"}},
	}
	return convs, results
}

func aggregateFixture(t *testing.T) *Report {
	t.Helper()
	convs, results := fixture()
	report, err := New().Aggregate(convs, results)
	require.NoError(t, err)
	return report
}

func TestAggregateStats(t *testing.T) {
	r := aggregateFixture(t)
	assert.Equal(t, Stats{
		Total: 4, Positive: 1, Neutral: 1, Negative: 2,
		PositivePercentage: 25, NeutralPercentage: 25, NegativePercentage: 50,
	}, r.Stats)
}

func TestAggregateThemesAndWordCloud(t *testing.T) {
	r := aggregateFixture(t)

	want := []ThemeStat{
		{
			Theme: "A", Count: 3,
			Sentiment:  SentimentCounts{Positive: 1, Negative: 2},
			Percentage: SentimentPercentages{Positive: 33, Negative: 67},
		},
		{
			Theme: "B", Count: 2,
			Sentiment:  SentimentCounts{Positive: 1, Negative: 1},
			Percentage: SentimentPercentages{Positive: 50, Negative: 50},
		},
	}
	if diff := cmp.Diff(want, r.Themes); diff != "" {
		t.Errorf("themes mismatch (-want +got):\n%s", diff)
	}

	wantCloud := []WordCloudEntry{
		{Value: "k1", Count: 4, Sentiment: SentimentCounts{Positive: 1, Neutral: 1, Negative: 2}},
		{Value: "k2", Count: 2, Sentiment: SentimentCounts{Positive: 1, Negative: 1}},
	}
	if diff := cmp.Diff(wantCloud, r.WordCloud); diff != "" {
		t.Errorf("word cloud mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateTimeline(t *testing.T) {
	r := aggregateFixture(t)
	want := []TimelinePoint{
		{Month: "2025-03", Volume: 1, Satisfaction: 100},
		{Month: "2025-06", Volume: 1, Satisfaction: 0},
		{Month: "2025-09", Volume: 1, Satisfaction: 0},
		{Month: "2025-12", Volume: 1, Satisfaction: 50},
	}
	assert.Equal(t, want, r.Timeline)
}

func TestAggregateKPIs(t *testing.T) {
	r := aggregateFixture(t)

	assert.Equal(t, 4, r.KPIs.Verbatims.Value)
	assert.Equal(t, "Analyse de 4 conversations DPD", r.KPIs.Verbatims.Comparison)
	// 37.5 rounds half to even
	assert.Equal(t, 38, r.KPIs.Satisfaction.Value)
	assert.Equal(t, "%", r.KPIs.Satisfaction.Unit)
	assert.Equal(t, ShareKPI{Value: 1, Percentage: 25, Label: "PROMOTEURS"}, r.KPIs.Promoters)
	assert.Equal(t, ShareKPI{Value: 1, Percentage: 25, Label: "PASSIFS"}, r.KPIs.Passives)
	assert.Equal(t, ShareKPI{Value: 2, Percentage: 50, Label: "DETRACTEURS"}, r.KPIs.Detractors)
	assert.Equal(t, PriorityThemeKPI{
		Theme: "A", Mentions: 3, NegativePercentage: 67, Impact: -50, Label: "THEME PRIORITAIRE #1",
	}, r.KPIs.PriorityTheme)
}

func TestAggregateMatrix(t *testing.T) {
	r := aggregateFixture(t)
	assert.Equal(t, PrioritizationMatrix{
		GlobalSatisfactionBaseline: 38,
		TotalVerbatims:             4,
		Themes: []MatrixTheme{{
			Label: "A", Frequency: 75, Impact: -7, Mentions: 3,
			NegativePct: 67, PositivePct: 33, Quadrant: QuadrantPriorities,
		}},
	}, r.Matrix)
}

func TestAggregateChannels(t *testing.T) {
	r := aggregateFixture(t)

	assert.Equal(t, ChannelStats{
		Total: 2, Positive: 1, Negative: 1,
		PositivePercentage: 50, NegativePercentage: 50, SatisfactionScore: 50,
	}, r.Channels.Short)
	assert.Equal(t, ChannelStats{
		Total: 2, Neutral: 1, Negative: 1,
		NeutralPercentage: 50, NegativePercentage: 50,
	}, r.Channels.Long)
	assert.Equal(t, 50.0, r.Channels.Insight.Difference)
	assert.Contains(t, r.Channels.Insight.Message, "(2 conv.) ont 50.0% de satisfaction vs 0.0%")
	assert.NotEmpty(t, r.Channels.Insight.Recommendation)
}

func TestAggregateSites(t *testing.T) {
	r := aggregateFixture(t)

	require.Len(t, r.Sites, len(Sites))
	assert.Equal(t, SitePerformance{
		Site: "Paris", Total: 1, Positive: 1, SatisfactionPercentage: 100, Volume: 1,
	}, r.Sites[0])
	assert.Equal(t, SitePerformance{
		Site: "Toulouse", Total: 1, Neutral: 1, Volume: 1,
	}, r.Sites[3])
	assert.Equal(t, SitePerformance{Site: "Grenoble"}, r.Sites[11])
}

func TestAggregateConversations(t *testing.T) {
	r := aggregateFixture(t)
	require.Len(t, r.Conversations, 4)

	first := r.Conversations[0]
	assert.Equal(t, "conv_00001", first.ID)
	assert.Equal(t, "2025-03-01", first.Date)
	assert.Equal(t, "call", first.Type)
	assert.Equal(t, models.SentimentPositive, first.Sentiment)
	assert.Equal(t, "premier appel", first.Extract)
	assert.Equal(t, []string{"A", "B"}, first.Themes)
	assert.Equal(t, "AGT-014", first.Metadata.AgentID)
	assert.Equal(t, "Paris", first.Metadata.Site)
	require.NotNil(t, first.Metadata.Duration)
	assert.Equal(t, "2:00", *first.Metadata.Duration)
	require.Len(t, first.Feedbacks, 1)
	assert.Equal(t, []Tag{
		{Label: "A", Sentiment: 1.0, ConfidenceScore: 5},
		{Label: "B", Sentiment: 1.0, ConfidenceScore: 5},
	}, first.Feedbacks[0].Tags)

	assert.Equal(t, "2025-06-04", r.Conversations[1].Date)
	assert.Equal(t, "AGT-021", r.Conversations[1].Metadata.AgentID)
	assert.Equal(t, "3:20", *r.Conversations[1].Metadata.Duration)
	assert.Nil(t, r.Conversations[2].Metadata.Duration)
	assert.Equal(t, 0.0, r.Conversations[2].Feedbacks[0].Tags[0].Sentiment)
	assert.Equal(t, "3:05", *r.Conversations[3].Metadata.Duration)
	assert.Equal(t, 0.5, r.Conversations[3].Feedbacks[0].Tags[0].Sentiment)
}

func TestAggregateTruncatesExtract(t *testing.T) {
	long := ""
	for i := 0; i < 60; i++ {
		long += "àbcdefghij"
	}
	convs := []models.Conversation{{Summary: long}}
	results := []models.Classification{{Sentiment: models.SentimentNeutral, Confidence: 3, Themes: []string{"Service client"}}}

	r, err := New().Aggregate(convs, results)
	require.NoError(t, err)

	conv := r.Conversations[0]
	assert.Equal(t, 203, len([]rune(conv.Extract)))
	assert.Equal(t, "...", conv.Extract[len(conv.Extract)-3:])
	assert.Equal(t, 500, len([]rune(conv.FullText)))
	assert.Equal(t, 400, len([]rune(conv.Feedbacks[0].Text)))
}

func TestAggregateEmpty(t *testing.T) {
	r, err := New().Aggregate(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, Stats{}, r.Stats)
	assert.Empty(t, r.Conversations)
	assert.NotNil(t, r.Conversations)
	assert.Empty(t, r.Themes)
	assert.Empty(t, r.WordCloud)
	assert.Empty(t, r.Timeline)
	assert.Empty(t, r.Matrix.Themes)
	assert.Empty(t, r.Sites)
	assert.Equal(t, "N/A", r.KPIs.PriorityTheme.Theme)
	assert.Zero(t, r.KPIs.PriorityTheme.Impact)
	assert.Zero(t, r.KPIs.Satisfaction.Value)
	assert.Zero(t, r.Channels.Short.Total)
	assert.Zero(t, r.Channels.Insight.Difference)
}

func TestAggregateLengthMismatch(t *testing.T) {
	convs, results := fixture()
	_, err := New().Aggregate(convs, results[:2])
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestAccumulatorMergeMatchesSingleFold(t *testing.T) {
	convs, results := fixture()

	whole, err := New().Aggregate(convs, results)
	require.NoError(t, err)

	left := NewAccumulator(len(convs))
	right := NewAccumulator(len(convs))
	for i := range convs {
		if i < 2 {
			left.Add(i, convs[i], results[i])
		} else {
			right.Add(i, convs[i], results[i])
		}
	}
	left.Merge(right)

	if diff := cmp.Diff(whole, left.Report()); diff != "" {
		t.Errorf("merged report mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateInvariants(t *testing.T) {
	summaries := []string{
		"Le client exprime sa frustration et insulte le livreur, colis perdu pour la quatrieme fois",
		"Le client remercie l'agent, tout est resolu et confirme",
		"Demande de suivi du colis, mise a jour du statut",
		"Colis endommage, reclamation ouverte au point relais",
		"Retard de livraison depuis deux semaines, colis bloque a l'agence",
		"",
	}
	c := classifier.New(sentiment.New(), theme.New(), keyword.New(), logger.NewNop(), 1)

	for _, n := range []int{1, 7, 12, 100, 257} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			convs := make([]models.Conversation, n)
			results := make([]models.Classification, n)
			for i := range convs {
				convs[i] = models.Conversation{Summary: summaries[i%len(summaries)], AudioDuration: float64(i * 11 % 400)}
				results[i] = c.Classify(convs[i])
			}

			r, err := New().Aggregate(convs, results)
			require.NoError(t, err)

			assert.Equal(t, n, r.Stats.Total)
			assert.Equal(t, n, r.Stats.Positive+r.Stats.Neutral+r.Stats.Negative)

			volume := 0
			for _, p := range r.Timeline {
				volume += p.Volume
			}
			assert.Equal(t, n, volume)

			sites := 0
			for _, s := range r.Sites {
				sites += s.Total
			}
			assert.Equal(t, n, sites)

			assert.Equal(t, n, r.Channels.Short.Total+r.Channels.Long.Total)
			assert.Len(t, r.Conversations, n)
			assert.LessOrEqual(t, len(r.WordCloud), 50)

			for i := 1; i < len(r.Themes); i++ {
				assert.GreaterOrEqual(t, r.Themes[i-1].Count, r.Themes[i].Count)
			}
		})
	}
}
