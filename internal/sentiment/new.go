package sentiment

type implScorer struct {
	summaryNeg    Table
	summaryPos    Table
	transcriptNeg Table
	transcriptPos Table
	neutral       []string
	bonuses       []bonusRule
}

// New creates a Scorer over the built-in French indicator tables.
func New() Scorer {
	return &implScorer{
		summaryNeg:    summaryNegative,
		summaryPos:    summaryPositive,
		transcriptNeg: transcriptNegative,
		transcriptPos: transcriptPositive,
		neutral:       neutralPhrases,
		bonuses:       summaryBonuses,
	}
}
