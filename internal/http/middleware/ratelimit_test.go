package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiterAllowWithinBurst(t *testing.T) {
	rl := NewRateLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("expected request %d within burst to be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("expected request beyond burst to be rejected")
	}
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("expected first client to be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("expected first client to be exhausted")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatal("expected second client to have its own bucket")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	limited := RateLimit(NewRateLimiter(1, 1))(handler)

	req := httptest.NewRequest(http.MethodPost, "/leads/score", nil)
	req.RemoteAddr = "192.0.2.10:53211"

	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", rec.Code)
	}

	// Same host on a new ephemeral port must hit the same bucket.
	req2 := httptest.NewRequest(http.MethodPost, "/leads/score", nil)
	req2.RemoteAddr = "192.0.2.10:53999"

	rec2 := httptest.NewRecorder()
	limited.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be limited, got %d", rec2.Code)
	}
	if rec2.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on 429")
	}
}
