package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("LLM_TIMEOUT", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.LLMProvider != "openai" {
		t.Fatalf("expected default provider openai, got %s", cfg.LLMProvider)
	}
	if cfg.LLMModel != "" {
		t.Fatalf("expected default model empty, got %s", cfg.LLMModel)
	}
	if cfg.LLMTimeout != 15*time.Second {
		t.Fatalf("expected default llm timeout, got %s", cfg.LLMTimeout)
	}
	if cfg.LLMMaxTokens != 256 {
		t.Fatalf("expected default max tokens, got %d", cfg.LLMMaxTokens)
	}
	if cfg.AWSRegion != "us-east-1" {
		t.Fatalf("expected default aws region, got %s", cfg.AWSRegion)
	}
	if cfg.RateLimitRPS != 10 || cfg.RateLimitBurst != 20 {
		t.Fatalf("expected default rate limit 10/20, got %d/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LLM_PROVIDER", " Bedrock ")
	t.Setenv("LLM_MODEL", "anthropic.claude-3-haiku-20240307-v1:0")
	t.Setenv("LLM_TIMEOUT", "45s")
	t.Setenv("LLM_MAX_TOKENS", "512")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env override, got %s", cfg.Env)
	}
	if cfg.LLMProvider != "bedrock" {
		t.Fatalf("expected provider normalized to bedrock, got %s", cfg.LLMProvider)
	}
	if cfg.LLMModel != "anthropic.claude-3-haiku-20240307-v1:0" {
		t.Fatalf("expected model override, got %s", cfg.LLMModel)
	}
	if cfg.LLMTimeout != 45*time.Second {
		t.Fatalf("expected llm timeout override, got %s", cfg.LLMTimeout)
	}
	if cfg.LLMMaxTokens != 512 {
		t.Fatalf("expected max tokens override, got %d", cfg.LLMMaxTokens)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Fatalf("expected openai key override, got %s", cfg.OpenAIAPIKey)
	}
	if cfg.AllowedOrigins != "https://app.example.com" {
		t.Fatalf("expected allowed origins override, got %s", cfg.AllowedOrigins)
	}
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "not-a-duration")
	cfg := Load()
	if cfg.LLMTimeout != 15*time.Second {
		t.Fatalf("expected fallback timeout on bad value, got %s", cfg.LLMTimeout)
	}
}
