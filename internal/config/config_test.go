package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_PORT", "")
	t.Setenv("PROCESSING_DELAY_MIN_MS", "")
	t.Setenv("PROCESSING_DELAY_MAX_MS", "")
	t.Setenv("TYPING_DELAY_PER_CHAR_MS", "")
	t.Setenv("API_RATE_LIMIT_RPS", "")

	cfg := Load()
	if cfg.APIPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.APIPort)
	}
	if cfg.ProcessingDelayMinMs != 2000 || cfg.ProcessingDelayMaxMs != 5000 {
		t.Fatalf("expected default processing window 2000..5000, got %d..%d", cfg.ProcessingDelayMinMs, cfg.ProcessingDelayMaxMs)
	}
	if cfg.TypingDelayPerCharMs != 15 || cfg.TypingDelayMaxMs != 3000 || cfg.TypingDelayBaseMs != 800 {
		t.Fatalf("unexpected typing defaults: %+v", cfg)
	}
	if cfg.APIRateLimitRPS != 0 {
		t.Fatalf("rate limiting must be off by default, got %d", cfg.APIRateLimitRPS)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("PROCESSING_DELAY_MIN_MS", "10")
	t.Setenv("PROCESSING_DELAY_MAX_MS", "20")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("API_RATE_LIMIT_RPS", "5")
	t.Setenv("API_RATE_LIMIT_BURST", "10")

	cfg := Load()
	if cfg.APIPort != "9090" {
		t.Fatalf("expected port override, got %q", cfg.APIPort)
	}
	if cfg.ProcessingDelayMinMs != 10 || cfg.ProcessingDelayMaxMs != 20 {
		t.Fatalf("expected processing window override, got %d..%d", cfg.ProcessingDelayMinMs, cfg.ProcessingDelayMaxMs)
	}
	if cfg.RandomSeed != 42 {
		t.Fatalf("expected seed 42, got %d", cfg.RandomSeed)
	}
	if cfg.APIRateLimitRPS != 5 || cfg.APIRateLimitBurst != 10 {
		t.Fatalf("expected rate limit overrides, got rps=%d burst=%d", cfg.APIRateLimitRPS, cfg.APIRateLimitBurst)
	}
}

func TestLoadIgnoresMalformedInts(t *testing.T) {
	t.Setenv("PROCESSING_DELAY_MIN_MS", "not-a-number")

	cfg := Load()
	if cfg.ProcessingDelayMinMs != 2000 {
		t.Fatalf("expected fallback for malformed int, got %d", cfg.ProcessingDelayMinMs)
	}
}
