package leads

import (
	"fmt"
	"math/rand"
	"strings"
)

// Candidate pools for the synthetic generator. A modest batch covers
// every scoring branch, including unrecognized channels and leads with
// no engagement history.
var (
	generatorFirstNames = []string{
		"Avery", "Jordan", "Priya", "Marcus", "Elena",
		"Grace", "Noah", "Dana", "Felix", "Sam",
	}
	generatorLastNames = []string{
		"Chen", "Okafor", "Alvarez", "Kowalski", "Singh",
		"Bauer", "Lindqvist", "Mori", "Petrov", "Hale",
	}
	generatorCompanies = []string{
		"Brightpath Analytics", "Northwind Logistics", "Cobalt Systems",
		"Juniper Health", "Vector Labs", "Atlas Freight",
		"Luma Retail", "Fernwood Media",
	}
	generatorTitles = []string{
		"CTO", "VP of Engineering", "Director of Operations",
		"Head of Data", "Team Lead, Platform", "Engineering Manager",
		"Account Executive", "Marketing Intern", "Office Manager",
		"Business Analyst",
	}
	generatorInquiries = []string{
		"Can we schedule a demo next week?",
		"What does pricing look like for a 200 seat rollout?",
		"We want to run a proof of concept this quarter.",
		"Looking to integrate your API with our billing stack.",
		"Is there a free trial available for small teams?",
		"I have a question about your security certifications.",
		"I have a question about onboarding timelines.",
		"Just browsing, thanks for the resources.",
		"Saw your webinar and wanted to learn more.",
	}
	generatorChannels = []string{
		ChannelWebsiteForm, ChannelLinkedIn, ChannelPartnerReferral,
		ChannelWebinarSignup, ChannelColdEmail,
	}
	generatorIndustries = []string{
		"SaaS", "Healthcare", "Logistics", "Retail",
		"Manufacturing", "Financial Services", "Media",
	}
	// The empty entry produces leads with no engagement history, which
	// the prompt renders as N/A.
	generatorEngagements = []string{
		"Downloaded the integration whitepaper",
		"Attended two product webinars",
		"Visited the pricing page three times",
		"Opened the last four newsletters",
		"Replied to outreach within an hour",
		"",
	}
)

// Generator produces synthetic leads from fixed candidate pools.
// The same seed always yields the same sequence.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a seeded generator
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns one synthetic lead. Every generated lead passes Validate.
func (g *Generator) Generate() Lead {
	first := g.pick(generatorFirstNames)
	last := g.pick(generatorLastNames)
	company := g.pick(generatorCompanies)

	return Lead{
		Name:               first + " " + last,
		Email:              fmt.Sprintf("%s.%s@%s", strings.ToLower(first), strings.ToLower(last), companyDomain(company)),
		Company:            company,
		Title:              g.pick(generatorTitles),
		InquiryMessage:     g.pick(generatorInquiries),
		SourceChannel:      g.pick(generatorChannels),
		Industry:           g.pick(generatorIndustries),
		EngagementBehavior: g.pick(generatorEngagements),
	}
}

// Batch returns n synthetic leads
func (g *Generator) Batch(n int) []Lead {
	out := make([]Lead, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Generate())
	}
	return out
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

func companyDomain(company string) string {
	return strings.ReplaceAll(strings.ToLower(company), " ", "") + ".com"
}
