package aggregator

import (
	"fmt"
	"math"
)

// Records are spread over a fixed twelve-month window starting March 2025.
const (
	firstMonth  = 3
	firstYear   = 2025
	monthsSpan  = 12
	daysInCycle = 28
	agentPool   = 50
)

// Sites is the round-robin list of delivery sites.
var Sites = []string{
	"Paris", "Lyon", "Marseille", "Toulouse", "Bordeaux",
	"Nantes", "Strasbourg", "Lille", "Nice", "Montpellier",
	"Rennes", "Grenoble",
}

// MonthKey returns the YYYY-MM bucket of record i out of n.
func MonthKey(i, n int) string {
	if n <= 0 {
		n = 1
	}
	bucket := min(max(i*monthsSpan/n, 0), monthsSpan-1)
	month := firstMonth + bucket
	year := firstYear
	if month > 12 {
		month -= 12
		year++
	}
	return fmt.Sprintf("%d-%02d", year, month)
}

// Day returns the synthetic day of month of record i.
func Day(i int) int {
	return 1 + (i*3)%daysInCycle
}

// Site returns the site record i is attributed to.
func Site(i int) string {
	return Sites[i%len(Sites)]
}

// AgentID returns the synthetic agent handling record i.
func AgentID(i int) string {
	return fmt.Sprintf("AGT-%03d", (i*7+13)%agentPool+1)
}

// ConversationID is 1-based and zero padded.
func ConversationID(i int) string {
	return fmt.Sprintf("conv_%05d", i+1)
}

// FormatDuration renders seconds as m:ss, or nil when the duration is unknown.
func FormatDuration(seconds float64) *string {
	if seconds == 0 || math.IsNaN(seconds) {
		return nil
	}
	minutes := math.Floor(seconds / 60)
	secs := seconds - minutes*60
	s := fmt.Sprintf("%d:%02d", int(minutes), int(secs))
	return &s
}
