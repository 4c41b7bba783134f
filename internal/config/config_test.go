package config

import "testing"

func TestLoad_RequiresGeminiKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	if _, err := Load(); err == nil {
		t.Error("Load() succeeded without GEMINI_API_KEY, want error")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("TRIPSMITH_HTTP_ADDR", "")
	t.Setenv("TRIPSMITH_CORS_ORIGIN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q, want :8080", cfg.HTTP.Addr)
	}
	if cfg.CORS.Origin != "http://localhost:3000" {
		t.Errorf("CORS.Origin = %q, want http://localhost:3000", cfg.CORS.Origin)
	}
	if cfg.AI.GeminiKey != "test-key" {
		t.Errorf("AI.GeminiKey = %q", cfg.AI.GeminiKey)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("TRIPSMITH_HTTP_ADDR", ":9999")
	t.Setenv("TRIPSMITH_CORS_ORIGIN", "https://app.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTP.Addr != ":9999" || cfg.CORS.Origin != "https://app.example.com" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}
