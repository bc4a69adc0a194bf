package aggregator

import "github.com/nguyentantai21042004/voc-pipeline/internal/models"

// Report holds the nine dashboard documents produced by one run.
type Report struct {
	Stats         Stats
	Conversations []EnrichedConversation
	Themes        []ThemeStat
	WordCloud     []WordCloudEntry
	Timeline      []TimelinePoint
	KPIs          KPIs
	Matrix        PrioritizationMatrix
	Channels      ChannelComparison
	Sites         []SitePerformance

	// TopNegativeMentions is the negative count behind KPIs.PriorityTheme.
	TopNegativeMentions int
}

// SentimentCounts is a per-category counter.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

func (c *SentimentCounts) add(s models.Sentiment) {
	switch s {
	case models.SentimentPositive:
		c.Positive++
	case models.SentimentNegative:
		c.Negative++
	default:
		c.Neutral++
	}
}

func (c *SentimentCounts) merge(o SentimentCounts) {
	c.Positive += o.Positive
	c.Neutral += o.Neutral
	c.Negative += o.Negative
}

// Total is the number of records counted.
func (c SentimentCounts) Total() int {
	return c.Positive + c.Neutral + c.Negative
}

// Stats is the global sentiment split.
type Stats struct {
	Total              int     `json:"total"`
	Positive           int     `json:"positive"`
	Neutral            int     `json:"neutral"`
	Negative           int     `json:"negative"`
	PositivePercentage float64 `json:"positive_percentage"`
	NeutralPercentage  float64 `json:"neutral_percentage"`
	NegativePercentage float64 `json:"negative_percentage"`
}

// EnrichedConversation is one row of the verbatim explorer.
type EnrichedConversation struct {
	ID        string               `json:"id"`
	Date      string               `json:"date"`
	Type      string               `json:"type"`
	Sentiment models.Sentiment     `json:"sentiment"`
	Extract   string               `json:"extract"`
	Themes    []string             `json:"themes"`
	FullText  string               `json:"fullText"`
	Feedbacks []Feedback           `json:"feedbacks"`
	Metadata  ConversationMetadata `json:"metadata"`
}

type Feedback struct {
	FeedbackPoint string `json:"feedback_point"`
	Text          string `json:"text"`
	Tags          []Tag  `json:"tags"`
}

type Tag struct {
	Label           string  `json:"label"`
	Sentiment       float64 `json:"sentiment"`
	ConfidenceScore int     `json:"confidence_score"`
}

type ConversationMetadata struct {
	AgentID  string  `json:"agent_id"`
	Duration *string `json:"duration"`
	Site     string  `json:"site"`
}

// SentimentPercentages are whole-number shares of a bucket.
type SentimentPercentages struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

type ThemeStat struct {
	Theme      string               `json:"theme"`
	Count      int                  `json:"count"`
	Sentiment  SentimentCounts      `json:"sentiment"`
	Percentage SentimentPercentages `json:"percentage"`
}

type WordCloudEntry struct {
	Value     string          `json:"value"`
	Count     int             `json:"count"`
	Sentiment SentimentCounts `json:"sentiment"`
}

type TimelinePoint struct {
	Month        string  `json:"month"`
	Volume       int     `json:"volume"`
	Satisfaction float64 `json:"satisfaction"`
}

// KPIs feeds the headline cards.
type KPIs struct {
	Verbatims     TrendKPI         `json:"verbatims_traites"`
	Satisfaction  TrendKPI         `json:"score_satisfaction"`
	Promoters     ShareKPI         `json:"promoteurs"`
	Passives      ShareKPI         `json:"passifs"`
	Detractors    ShareKPI         `json:"detracteurs"`
	PriorityTheme PriorityThemeKPI `json:"theme_prioritaire"`
}

type TrendKPI struct {
	Value          int    `json:"value"`
	Unit           string `json:"unit,omitempty"`
	Trend          int    `json:"trend"`
	TrendDirection string `json:"trend_direction"`
	Label          string `json:"label"`
	Comparison     string `json:"comparison"`
}

type ShareKPI struct {
	Value      int    `json:"value"`
	Percentage int    `json:"percentage"`
	Label      string `json:"label"`
}

type PriorityThemeKPI struct {
	Theme              string `json:"theme"`
	Mentions           int    `json:"mentions"`
	NegativePercentage int    `json:"negative_percentage"`
	Impact             int    `json:"impact"`
	Label              string `json:"label"`
}

type Quadrant string

const (
	QuadrantPriorities Quadrant = "priorities"
	QuadrantStrengths  Quadrant = "strengths"
	QuadrantEmerging   Quadrant = "emerging"
	QuadrantNeutral    Quadrant = "neutral"
)

type PrioritizationMatrix struct {
	GlobalSatisfactionBaseline int           `json:"global_satisfaction_baseline"`
	TotalVerbatims             int           `json:"total_verbatims"`
	Themes                     []MatrixTheme `json:"themes"`
}

type MatrixTheme struct {
	Label       string   `json:"label"`
	Frequency   float64  `json:"frequency"`
	Impact      int      `json:"impact"`
	Mentions    int      `json:"mentions"`
	NegativePct int      `json:"negative_pct"`
	PositivePct int      `json:"positive_pct"`
	Quadrant    Quadrant `json:"quadrant"`
}

// ChannelComparison splits calls by duration. The dashboard chart expects
// short calls under "email" and long calls under "call".
type ChannelComparison struct {
	Short   ChannelStats   `json:"email"`
	Long    ChannelStats   `json:"call"`
	Insight ChannelInsight `json:"insight"`
}

type ChannelStats struct {
	Total              int     `json:"total"`
	Positive           int     `json:"positive"`
	Neutral            int     `json:"neutral"`
	Negative           int     `json:"negative"`
	PositivePercentage float64 `json:"positive_percentage"`
	NeutralPercentage  float64 `json:"neutral_percentage"`
	NegativePercentage float64 `json:"negative_percentage"`
	SatisfactionScore  float64 `json:"satisfaction_score"`
}

type ChannelInsight struct {
	Difference     float64 `json:"difference"`
	Message        string  `json:"message"`
	Recommendation string  `json:"recommendation"`
}

type SitePerformance struct {
	Site                   string  `json:"site"`
	Total                  int     `json:"total"`
	Positive               int     `json:"positive"`
	Neutral                int     `json:"neutral"`
	Negative               int     `json:"negative"`
	SatisfactionPercentage float64 `json:"satisfaction_percentage"`
	Volume                 int     `json:"volume"`
}
