package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "rzp_test_secret")
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_MODEL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port mismatch: got %q want 8080", cfg.Port)
	}
	if cfg.GeminiModel != "gemini-2.5-flash-preview-09-2025" {
		t.Fatalf("GeminiModel mismatch: got %q", cfg.GeminiModel)
	}
	if cfg.AdvanceAmount != 199 || cfg.FinalAmount != 3999 {
		t.Fatalf("amount defaults mismatch: advance=%d final=%d", cfg.AdvanceAmount, cfg.FinalAmount)
	}
	if cfg.Currency != "INR" {
		t.Fatalf("Currency mismatch: got %q", cfg.Currency)
	}
	if cfg.RetryAttempts != 3 || cfg.RetryBaseDelay != time.Second {
		t.Fatalf("retry defaults mismatch: attempts=%d base=%s", cfg.RetryAttempts, cfg.RetryBaseDelay)
	}
	if cfg.HTTPWriteTimeout != 0 {
		t.Fatalf("write timeout should default to 0 for SSE, got %s", cfg.HTTPWriteTimeout)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("AllowedOrigins mismatch: %#v", cfg.AllowedOrigins)
	}
}

func TestLoadConfigRequiresProviderKeys(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "rzp_test_secret")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error when GEMINI_API_KEY is missing")
	}

	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("RAZORPAY_KEY_SECRET", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error when razorpay credentials are missing")
	}
}
