package scoring

import (
	"strings"

	"github.com/salespulse/leadscore/internal/leads"
)

// fallbackExplanation is attached to every heuristic result.
const fallbackExplanation = "Heuristic fallback scoring due to LLM error."

// Keyword tables for the rule-based scorer. Intent and title matching is
// case-insensitive substring containment; channel matching is exact.
var (
	strongIntentKeywords = []string{"demo", "pricing", "proof of concept", "integrate", "trial"}
	seniorTitleKeywords  = []string{"cto", "vp", "head", "director", "lead"}

	channelScores = map[string]int{
		leads.ChannelWebsiteForm:     20,
		leads.ChannelLinkedIn:        15,
		leads.ChannelPartnerReferral: 25,
		leads.ChannelWebinarSignup:   10,
	}
)

const (
	strongIntentScore   = 50
	questionIntentScore = 20
	seniorTitleScore    = 20
	baseTitleScore      = 5
	unknownChannelScore = 5
)

// HeuristicScorer scores leads with fixed keyword rules. It performs no
// I/O and cannot fail.
type HeuristicScorer struct{}

// NewHeuristicScorer creates the rule-based scorer
func NewHeuristicScorer() *HeuristicScorer {
	return &HeuristicScorer{}
}

// Score computes a deterministic result for the lead
func (s *HeuristicScorer) Score(lead leads.Lead) Result {
	score := intentScore(lead.InquiryMessage) + titleScore(lead.Title) + channelScore(lead.SourceChannel)
	score = clampScore(score)

	return Result{
		Score:       score,
		Category:    CategoryForScore(score),
		Explanation: fallbackExplanation,
	}
}

func intentScore(message string) int {
	m := strings.ToLower(message)
	for _, kw := range strongIntentKeywords {
		if strings.Contains(m, kw) {
			return strongIntentScore
		}
	}
	if strings.Contains(m, "question") {
		return questionIntentScore
	}
	return 0
}

func titleScore(title string) int {
	t := strings.ToLower(title)
	for _, kw := range seniorTitleKeywords {
		if strings.Contains(t, kw) {
			return seniorTitleScore
		}
	}
	return baseTitleScore
}

func channelScore(channel string) int {
	if pts, ok := channelScores[channel]; ok {
		return pts
	}
	return unknownChannelScore
}
