package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salespulse/leadscore/internal/leads"
)

func TestHeuristicScorer_Score(t *testing.T) {
	scorer := NewHeuristicScorer()

	tests := []struct {
		name         string
		lead         leads.Lead
		wantScore    int
		wantCategory Category
	}{
		{
			name: "senior title with demo intent via referral",
			lead: leads.Lead{
				Title:          "VP Engineering",
				InquiryMessage: "Can we schedule a demo next week?",
				SourceChannel:  leads.ChannelPartnerReferral,
			},
			wantScore:    95,
			wantCategory: CategoryHot,
		},
		{
			name: "junior title with no intent from cold email",
			lead: leads.Lead{
				Title:          "Marketing Intern",
				InquiryMessage: "Just browsing, thanks.",
				SourceChannel:  leads.ChannelColdEmail,
			},
			wantScore:    10,
			wantCategory: CategoryCold,
		},
		{
			name: "question without buying keywords stays cold",
			lead: leads.Lead{
				Title:          "Director of IT",
				InquiryMessage: "I have a question about integration",
				SourceChannel:  leads.ChannelLinkedIn,
			},
			wantScore:    55,
			wantCategory: CategoryCold,
		},
		{
			name: "pricing keyword counts as strong intent",
			lead: leads.Lead{
				Title:          "Business Analyst",
				InquiryMessage: "What does PRICING look like for us?",
				SourceChannel:  leads.ChannelWebsiteForm,
			},
			wantScore:    75,
			wantCategory: CategoryWarm,
		},
		{
			name: "proof of concept phrase matches",
			lead: leads.Lead{
				Title:          "Head of Data",
				InquiryMessage: "We want to run a proof of concept this quarter.",
				SourceChannel:  leads.ChannelWebinarSignup,
			},
			wantScore:    80,
			wantCategory: CategoryHot,
		},
		{
			name: "trial keyword from unrecognized channel",
			lead: leads.Lead{
				Title:          "CTO",
				InquiryMessage: "Is there a free trial available?",
				SourceChannel:  "Trade Show",
			},
			wantScore:    75,
			wantCategory: CategoryWarm,
		},
		{
			name: "strong intent wins over question keyword",
			lead: leads.Lead{
				Title:          "Office Manager",
				InquiryMessage: "Quick question: can we integrate with your API?",
				SourceChannel:  leads.ChannelWebsiteForm,
			},
			wantScore:    75,
			wantCategory: CategoryWarm,
		},
		{
			name: "title keyword is case-insensitive",
			lead: leads.Lead{
				Title:          "director of operations",
				InquiryMessage: "Just browsing, thanks.",
				SourceChannel:  leads.ChannelLinkedIn,
			},
			wantScore:    35,
			wantCategory: CategoryCold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Score(tt.lead)

			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, tt.wantCategory, result.Category)
			assert.Equal(t, fallbackExplanation, result.Explanation)
		})
	}
}

func TestHeuristicScorer_Deterministic(t *testing.T) {
	scorer := NewHeuristicScorer()
	lead := leads.Lead{
		Title:          "VP of Engineering",
		InquiryMessage: "Can we schedule a demo next week?",
		SourceChannel:  leads.ChannelPartnerReferral,
	}

	first := scorer.Score(lead)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, scorer.Score(lead))
	}
}

func TestHeuristicScorer_ScoreAlwaysInRange(t *testing.T) {
	scorer := NewHeuristicScorer()
	gen := leads.NewGenerator(19)

	for _, lead := range gen.Batch(300) {
		result := scorer.Score(lead)
		assert.GreaterOrEqual(t, result.Score, MinScore)
		assert.LessOrEqual(t, result.Score, MaxScore)
		assert.Equal(t, CategoryForScore(result.Score), result.Category)
	}
}
