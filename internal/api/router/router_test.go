package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/salespulse/leadscore/internal/leads"
	"github.com/salespulse/leadscore/internal/scoring"
	"github.com/salespulse/leadscore/pkg/logging"
)

func newTestRouter(t *testing.T, cfg *Config) http.Handler {
	t.Helper()

	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	if cfg.ScoringHandler == nil {
		service := scoring.NewService(nil, scoring.NewHeuristicScorer(), nil, cfg.Logger)
		cfg.ScoringHandler = scoring.NewHandler(service, cfg.Logger)
	}
	return New(cfg)
}

func TestRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}

	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", resp["status"])
	}
}

func TestRouterScoreEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	payload := leads.Lead{
		Name:           "Router Test",
		Email:          "router.test@example.com",
		Company:        "Example Corp",
		Title:          "VP Engineering",
		InquiryMessage: "Can we schedule a demo next week?",
		SourceChannel:  leads.ChannelPartnerReferral,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/leads/score", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var result scoring.Result
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result.Category != scoring.CategoryHot {
		t.Errorf("expected Hot for a senior demo request via referral, got %s", result.Category)
	}
	if result.Score != 95 {
		t.Errorf("expected score 95, got %d", result.Score)
	}
}

func TestRouterScoreEndpointRejectsInvalidLead(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/leads/score", strings.NewReader(`{"name": "No Email"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestRouterScoreEndpointRateLimited(t *testing.T) {
	router := newTestRouter(t, &Config{RateLimitRPS: 1, RateLimitBurst: 1})

	payload := leads.Lead{
		Name:           "Router Test",
		Email:          "router.test@example.com",
		Company:        "Example Corp",
		Title:          "VP Engineering",
		InquiryMessage: "Can we schedule a demo next week?",
		SourceChannel:  leads.ChannelPartnerReferral,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/leads/score", bytes.NewReader(body))
		req.RemoteAddr = "192.0.2.20:40000"
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr.Code
	}

	if code := send(); code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", code)
	}

	// Health stays reachable while scoring is throttled.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "192.0.2.20:40001"
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected health to bypass the limiter, got %d", rr.Code)
	}
}

func TestRouterMetricsEndpointMountedWhenConfigured(t *testing.T) {
	metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router := newTestRouter(t, &Config{MetricsHandler: metricsHandler})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected metrics route to be mounted, got %d", rr.Code)
	}

	withoutMetrics := newTestRouter(t, nil)
	rr = httptest.NewRecorder()
	withoutMetrics.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without a metrics handler, got %d", rr.Code)
	}
}
