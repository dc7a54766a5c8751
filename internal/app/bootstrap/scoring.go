package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/prometheus/client_golang/prometheus"
	openai "github.com/sashabaranov/go-openai"

	appconfig "github.com/salespulse/leadscore/internal/config"
	"github.com/salespulse/leadscore/internal/observability/metrics"
	"github.com/salespulse/leadscore/internal/scoring"
	"github.com/salespulse/leadscore/pkg/logging"
)

// Default model per provider, used when LLM_MODEL is empty.
const (
	defaultOpenAIModel  = "gpt-4o-mini"
	defaultGeminiModel  = "gemini-2.5-flash"
	defaultBedrockModel = "anthropic.claude-3-haiku-20240307-v1:0"
)

// BuildLLMClient wires the configured completion provider and resolves the
// model id. A nil client with a nil error means no provider credentials are
// present and the caller should run on heuristics alone.
func BuildLLMClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (scoring.LLMClient, string, error) {
	if cfg == nil {
		return nil, "", fmt.Errorf("bootstrap: config is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	model := strings.TrimSpace(cfg.LLMModel)

	switch cfg.LLMProvider {
	case "openai":
		if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
			logger.Warn("OPENAI_API_KEY not set; scoring runs on heuristics only")
			return nil, "", nil
		}
		if model == "" {
			model = defaultOpenAIModel
		}
		return scoring.NewOpenAIClient(openai.NewClient(cfg.OpenAIAPIKey)), model, nil

	case "gemini":
		if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
			logger.Warn("GEMINI_API_KEY not set; scoring runs on heuristics only")
			return nil, "", nil
		}
		if model == "" {
			model = defaultGeminiModel
		}
		client, err := scoring.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return nil, "", fmt.Errorf("bootstrap: create gemini client: %w", err)
		}
		return client, model, nil

	case "bedrock":
		awsCfg, err := LoadAWSConfig(ctx, cfg)
		if err != nil {
			return nil, "", fmt.Errorf("bootstrap: load aws config: %w", err)
		}
		if model == "" {
			model = defaultBedrockModel
		}
		return scoring.NewBedrockClient(bedrockruntime.NewFromConfig(awsCfg)), model, nil

	default:
		return nil, "", fmt.Errorf("bootstrap: unknown llm provider %q", cfg.LLMProvider)
	}
}

// BuildScoringService wires the scoring pipeline from config. The service
// always carries the heuristic fallback; the LLM path is attached only when
// a provider is configured.
func BuildScoringService(ctx context.Context, cfg *appconfig.Config, reg prometheus.Registerer, logger *logging.Logger) (*scoring.Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("bootstrap: config is required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	client, model, err := BuildLLMClient(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var primary *scoring.LLMScorer
	if client != nil {
		primary = scoring.NewLLMScorer(client, model, int32(cfg.LLMMaxTokens), cfg.LLMTimeout)
		logger.Info("llm scoring enabled", "provider", cfg.LLMProvider, "model", model)
	}

	return scoring.NewService(primary, scoring.NewHeuristicScorer(), metrics.NewScoringMetrics(reg), logger), nil
}
