package scoring

import "context"

// Roles on provider-neutral chat messages.
const (
	ChatRoleSystem    = "system"
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// Stop reasons normalized across providers. Adapters map their SDK's
// equivalents onto these two; any other provider value passes through
// untranslated.
const (
	StopReasonStop      = "stop"
	StopReasonMaxTokens = "max_tokens"
)

// ChatMessage is one turn of a provider-neutral exchange.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TokenUsage is the provider's token accounting for a single completion.
// The scorer records both counts on the call span.
type TokenUsage struct {
	InputTokens  int32
	OutputTokens int32
}

// LLMRequest describes one scoring completion: the model id, system
// instructions, the user turn carrying the lead summary, and the sampling
// bounds. Temperature rides on every request.
type LLMRequest struct {
	Model       string
	System      []string
	Messages    []ChatMessage
	MaxTokens   int32
	Temperature float32
}

// LLMResponse is the raw completion the scorer parses into a Result. The
// stop reason distinguishes a finished reply from one cut off at the
// token limit.
type LLMResponse struct {
	Text       string
	Usage      TokenUsage
	StopReason string
}

// LLMClient abstracts a completion provider. Implementations honor the
// request's sampling parameters and normalize the stop reason to the
// package constants where an equivalent exists.
type LLMClient interface {
	Complete(ctx context.Context, req LLMRequest) (LLMResponse, error)
}
