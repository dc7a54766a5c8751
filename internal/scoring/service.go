package scoring

import (
	"context"
	"errors"
	"time"

	"github.com/salespulse/leadscore/internal/leads"
	"github.com/salespulse/leadscore/internal/observability/metrics"
	"github.com/salespulse/leadscore/pkg/logging"
)

// Strategy labels recorded in logs and metrics.
const (
	strategyLLM       = "llm"
	strategyHeuristic = "heuristic"
)

// Service scores leads with the LLM-backed scorer and falls back to the
// heuristic scorer when the primary path fails. The primary gets exactly
// one attempt per lead; there is no retry.
type Service struct {
	primary  *LLMScorer
	fallback *HeuristicScorer
	metrics  *metrics.ScoringMetrics
	logger   *logging.Logger
}

// NewService creates the scoring service. primary may be nil when no
// provider is configured, in which case every lead is scored by the
// fallback. metrics may be nil.
func NewService(primary *LLMScorer, fallback *HeuristicScorer, m *metrics.ScoringMetrics, logger *logging.Logger) *Service {
	if fallback == nil {
		panic("scoring: fallback scorer cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		primary:  primary,
		fallback: fallback,
		metrics:  m,
		logger:   logger,
	}
}

// ScoreLead produces a result for a validated lead. It does not return an
// error while the fallback is intact; callers can treat a non-nil error as
// an internal fault.
func (s *Service) ScoreLead(ctx context.Context, lead leads.Lead) (Result, error) {
	start := time.Now()

	if s.primary != nil {
		result, err := s.primary.Score(ctx, lead)
		if err == nil {
			s.metrics.ObserveScored(strategyLLM, string(result.Category))
			s.metrics.ObserveScoringLatency(strategyLLM, time.Since(start).Seconds())
			return result, nil
		}

		reason := failureReason(err)
		s.logger.Warn("llm scoring failed, using heuristic fallback",
			"error", err.Error(),
			"reason", reason,
			"company", lead.Company,
		)
		s.metrics.ObserveLLMFailure(reason)
	}

	result := s.fallback.Score(lead)
	s.metrics.ObserveScored(strategyHeuristic, string(result.Category))
	s.metrics.ObserveScoringLatency(strategyHeuristic, time.Since(start).Seconds())
	return result, nil
}

// failureReason collapses a primary-path error into a stable label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrModelCall):
		return "model_call"
	case errors.Is(err, ErrMalformedReply):
		return "malformed_reply"
	case errors.Is(err, ErrInvalidResult):
		return "invalid_result"
	default:
		return "unknown"
	}
}
