package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/salespulse/leadscore/internal/leads"
)

const scoringSystemPrompt = `You are a lead scoring assistant for a B2B software sales team. Score the lead on a 0-100 scale and assign a category: Hot (80-100), Warm (60-79), or Cold (0-59). The category must match the score band.

Weigh the signals in this order:
1. Explicit buying intent in the inquiry message (demo requests, pricing, trials, integration plans carry the most weight)
2. Company fit with a B2B software ideal customer profile
3. Title seniority (decision makers outrank individual contributors)
4. Engagement strength (webinars attended, content downloaded, pages visited)
5. Source channel quality (referrals and inbound forms beat cold outreach)

Respond with a single JSON object and nothing else:
{"score": <integer 0-100>, "category": "<Hot|Warm|Cold>", "explanation": "<one sentence>"}`

// Sampling is pinned low so repeated scoring of the same lead stays stable.
const scoringTemperature = 0.2

// LLMScorer scores leads through a completion provider. Each call is a
// single attempt bounded by the configured timeout; every failure mode is
// reported as one of the package's tagged errors so the caller can fall
// back.
type LLMScorer struct {
	client    LLMClient
	tracer    trace.Tracer
	model     string
	maxTokens int32
	timeout   time.Duration
}

// NewLLMScorer creates the LLM-backed scorer.
func NewLLMScorer(client LLMClient, model string, maxTokens int32, timeout time.Duration) *LLMScorer {
	if client == nil {
		panic("scoring: llm client cannot be nil")
	}
	if strings.TrimSpace(model) == "" {
		panic("scoring: model id is required")
	}
	if maxTokens <= 0 {
		maxTokens = 256
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &LLMScorer{
		client:    client,
		tracer:    otel.Tracer("leadscore.internal.scoring.llm"),
		model:     model,
		maxTokens: maxTokens,
		timeout:   timeout,
	}
}

// Score asks the model for a score result. The lead is assumed to have
// passed validation.
func (s *LLMScorer) Score(ctx context.Context, lead leads.Lead) (Result, error) {
	ctx, span := s.tracer.Start(ctx, "scoring.llm.score")
	defer span.End()
	span.SetAttributes(
		attribute.String("leadscore.model", s.model),
		attribute.String("leadscore.source_channel", lead.SourceChannel),
	)

	req := LLMRequest{
		Model:       s.model,
		System:      []string{scoringSystemPrompt},
		Messages:    []ChatMessage{{Role: ChatRoleUser, Content: formatLeadPrompt(lead)}},
		MaxTokens:   s.maxTokens,
		Temperature: scoringTemperature,
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Complete(callCtx, req)
	if err != nil {
		span.RecordError(err)
		return Result{}, fmt.Errorf("scoring: %w: %v", ErrModelCall, err)
	}
	span.SetAttributes(
		attribute.String("leadscore.stop_reason", resp.StopReason),
		attribute.Int("leadscore.input_tokens", int(resp.Usage.InputTokens)),
		attribute.Int("leadscore.output_tokens", int(resp.Usage.OutputTokens)),
	)

	result, err := parseModelReply(resp)
	if err != nil {
		span.RecordError(err)
		return Result{}, err
	}

	span.SetAttributes(
		attribute.Int("leadscore.score", result.Score),
		attribute.String("leadscore.category", string(result.Category)),
	)
	return result, nil
}

func formatLeadPrompt(lead leads.Lead) string {
	builder := strings.Builder{}
	builder.WriteString("Score this lead:\n")
	builder.WriteString(fmt.Sprintf("Name: %s\n", lead.Name))
	builder.WriteString(fmt.Sprintf("Email: %s\n", lead.Email))
	builder.WriteString(fmt.Sprintf("Company: %s\n", lead.Company))
	builder.WriteString(fmt.Sprintf("Title: %s\n", lead.Title))
	builder.WriteString(fmt.Sprintf("Source channel: %s\n", lead.SourceChannel))
	builder.WriteString(fmt.Sprintf("Industry: %s\n", valueOrNA(lead.Industry)))
	builder.WriteString(fmt.Sprintf("Engagement: %s\n", valueOrNA(lead.EngagementBehavior)))
	builder.WriteString(fmt.Sprintf("Inquiry: %s", lead.InquiryMessage))
	return builder.String()
}

func valueOrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

// parseModelReply extracts the first JSON object from the reply and checks
// it against the scoring contract. Models often wrap the JSON in prose or
// code fences; everything outside the first balanced object is ignored,
// and a reply whose first object does not parse is rejected outright
// rather than scanned further. A reply cut off at the token limit is
// reported with that detail.
func parseModelReply(resp LLMResponse) (Result, error) {
	payload, ok := extractJSONObject(resp.Text)
	if !ok {
		if resp.StopReason == StopReasonMaxTokens {
			return Result{}, fmt.Errorf("scoring: %w: reply truncated at the token limit", ErrMalformedReply)
		}
		return Result{}, fmt.Errorf("scoring: %w", ErrMalformedReply)
	}

	// Score is a pointer so an absent field is distinguishable from a
	// legitimate zero.
	var raw struct {
		Score       *int   `json:"score"`
		Category    string `json:"category"`
		Explanation string `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return Result{}, fmt.Errorf("scoring: %w: %v", ErrMalformedReply, err)
	}

	if raw.Score == nil {
		return Result{}, fmt.Errorf("scoring: %w: reply has no score", ErrInvalidResult)
	}
	score := *raw.Score
	if score < MinScore || score > MaxScore {
		return Result{}, fmt.Errorf("scoring: %w: score %d out of range", ErrInvalidResult, score)
	}
	category, ok := ParseCategory(raw.Category)
	if !ok {
		return Result{}, fmt.Errorf("scoring: %w: unknown category %q", ErrInvalidResult, raw.Category)
	}
	if category != CategoryForScore(score) {
		return Result{}, fmt.Errorf("scoring: %w: category %s inconsistent with score %d", ErrInvalidResult, category, score)
	}
	explanation := strings.TrimSpace(raw.Explanation)
	if explanation == "" {
		return Result{}, fmt.Errorf("scoring: %w: explanation is empty", ErrInvalidResult)
	}

	return Result{
		Score:       score,
		Category:    category,
		Explanation: explanation,
	}, nil
}

// extractJSONObject returns the first balanced brace-delimited object in
// text. Braces inside JSON strings do not count toward balance.
func extractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
