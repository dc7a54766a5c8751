package scoring

import "strings"

// Category buckets a score for sales routing
type Category string

const (
	CategoryHot  Category = "Hot"
	CategoryWarm Category = "Warm"
	CategoryCold Category = "Cold"
)

// Score bounds and category thresholds. A score qualifies for the
// highest band it reaches.
const (
	MinScore = 0
	MaxScore = 100

	hotThreshold  = 80
	warmThreshold = 60
)

// CategoryForScore derives the category from a score. Both scoring
// strategies use this rule, so a Result's score and category can never
// disagree.
func CategoryForScore(score int) Category {
	switch {
	case score >= hotThreshold:
		return CategoryHot
	case score >= warmThreshold:
		return CategoryWarm
	default:
		return CategoryCold
	}
}

// ParseCategory matches a string against the known categories ignoring
// case and surrounding whitespace
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hot":
		return CategoryHot, true
	case "warm":
		return CategoryWarm, true
	case "cold":
		return CategoryCold, true
	}
	return "", false
}

// Result is the outcome of scoring one lead
type Result struct {
	Score       int      `json:"score"`
	Category    Category `json:"category"`
	Explanation string   `json:"explanation"`
}

func clampScore(score int) int {
	if score > MaxScore {
		return MaxScore
	}
	if score < MinScore {
		return MinScore
	}
	return score
}
