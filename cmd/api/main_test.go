package main

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/salespulse/leadscore/internal/observability/metrics"
)

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "single", raw: "https://app.salespulse.io", want: []string{"https://app.salespulse.io"}},
		{
			name: "list with spaces and blanks",
			raw:  " https://app.salespulse.io , ,https://staging.salespulse.io ",
			want: []string{"https://app.salespulse.io", "https://staging.salespulse.io"},
		},
		{name: "wildcard", raw: "*", want: []string{"*"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseOrigins(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestScoringMetricsExported(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewScoringMetrics(reg)
	m.ObserveScored("heuristic", "Hot")

	handler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "leadscore_scoring_scored_total") {
		t.Fatalf("expected scored counter to be exported")
	}
}
